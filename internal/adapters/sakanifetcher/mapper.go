package sakanifetcher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"

	"github.com/mmcloughlin/geohash"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const geohashPrecision = 9

// fieldAliases lists, per canonical field, the upstream keys tried in order.
// Dotted keys walk nested objects; a numeric segment indexes an array.
// Replace with a single key per field once the marketplace schema is confirmed.
var fieldAliases = map[string][]string{
	"id":           {"id", "propertyId", "_id"},
	"title":        {"title", "name", "propertyTitle"},
	"description":  {"description", "details"},
	"price":        {"price", "priceAmount"},
	"city":         {"city", "location.city"},
	"propertyType": {"propertyType", "type", "category"},
	"bedrooms":     {"bedrooms", "bedroomCount"},
	"bathrooms":    {"bathrooms", "bathroomCount"},
	"area":         {"area", "size", "squareMeters"},
	"image":        {"image", "primaryImage", "images.0", "thumbnail"},
	"images":       {"images"},
	"purpose":      {"purpose", "listingType"},
	"amenities":    {"amenities", "features"},
	"createdAt":    {"createdAt", "created"},
	"updatedAt":    {"updatedAt", "updated"},
}

// Mapper implements port.PropertyNormalizerPort.
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

func (m *Mapper) NormalizeList(raw []byte) ([]domain.Property, error) {
	return NormalizeProperties(raw)
}

func (m *Mapper) NormalizeItem(raw []byte) (domain.Property, bool, error) {
	return NormalizeProperty(raw)
}

func decode(raw []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal api response: %w", err)
	}
	return v, nil
}

// NormalizeProperties maps a search payload: an array of items, or an object
// carrying the array under "data" (one or two levels deep). Any other shape
// yields an empty list.
func NormalizeProperties(raw []byte) ([]domain.Property, error) {
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}
	if obj, ok := v.(map[string]interface{}); ok && truthy(obj["data"]) {
		v = obj["data"]
	}
	return NormalizeValue(v), nil
}

// NormalizeValue maps an already decoded value.
func NormalizeValue(v interface{}) []domain.Property {
	switch val := v.(type) {
	case []interface{}:
		out := make([]domain.Property, 0, len(val))
		for _, item := range val {
			if obj, ok := item.(map[string]interface{}); ok {
				out = append(out, toDomainProperty(obj))
			}
		}
		return out
	case map[string]interface{}:
		if data, ok := val["data"].([]interface{}); ok {
			return NormalizeValue(data)
		}
	}
	return []domain.Property{}
}

// NormalizeProperty maps a single-record payload: the record itself or an
// object carrying it under "data". An array payload contributes its first item.
func NormalizeProperty(raw []byte) (domain.Property, bool, error) {
	v, err := decode(raw)
	if err != nil {
		return domain.Property{}, false, err
	}
	if obj, ok := v.(map[string]interface{}); ok && truthy(obj["data"]) {
		v = obj["data"]
	}
	if list, ok := v.([]interface{}); ok {
		if len(list) == 0 {
			return domain.Property{}, false, nil
		}
		v = list[0]
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return domain.Property{}, false, nil
	}
	return toDomainProperty(obj), true, nil
}

func toDomainProperty(item map[string]interface{}) domain.Property {
	p := domain.Property{
		ID:           asString(first(item, "id")),
		Title:        asString(first(item, "title")),
		Description:  asString(first(item, "description")),
		City:         asString(first(item, "city")),
		PropertyType: asString(first(item, "propertyType")),
		Image:        asString(first(item, "image")),
		CreatedAt:    asString(first(item, "createdAt")),
		UpdatedAt:    asString(first(item, "updatedAt")),
		Amenities:    asStringSlice(first(item, "amenities")),
	}

	if price, ok := asFloat(first(item, "price")); ok {
		p.Price = int64(math.Round(price))
	}
	if beds, ok := asFloat(first(item, "bedrooms")); ok && beds > 0 {
		p.Bedrooms = int(beds)
	}
	if baths, ok := asFloat(first(item, "bathrooms")); ok && baths >= 0 {
		n := int(baths)
		p.Bathrooms = &n
	}
	if area, ok := asFloat(first(item, "area")); ok {
		p.Area = area
	}

	p.Images = asStringSlice(first(item, "images"))
	if len(p.Images) == 0 && p.Image != "" {
		p.Images = []string{p.Image}
	}

	p.Purpose = purposeOf(item)
	p.Location = locationOf(item)

	return p
}

// purposeOf reads an explicit purpose, else the forRent flag; default is sale.
func purposeOf(item map[string]interface{}) string {
	if raw := asString(first(item, "purpose")); raw != "" {
		value := cases.Lower(language.Und).String(strings.TrimSpace(raw))
		switch {
		case strings.Contains(value, "rent"), value == "let", value == "lease":
			return domain.PurposeRent
		case strings.Contains(value, "sale"), strings.Contains(value, "sell"), value == "buy":
			return domain.PurposeSale
		}
	}
	if forRent, ok := item["forRent"].(bool); ok && forRent {
		return domain.PurposeRent
	}
	return domain.PurposeSale
}

// locationOf accepts {coordinates:[lng, lat]} (GeoJSON order, with lat/lng as
// fallback) or a plain {latitude, longitude} / {lat, lng} object.
func locationOf(item map[string]interface{}) *domain.Location {
	loc, ok := item["location"].(map[string]interface{})
	if !ok {
		return nil
	}

	var lat, lng float64
	var okLat, okLng bool

	if coords, isArray := loc["coordinates"].([]interface{}); isArray {
		if len(coords) > 1 {
			lat, okLat = nonZero(asFloat(coords[1]))
		}
		if len(coords) > 0 {
			lng, okLng = nonZero(asFloat(coords[0]))
		}
		if !okLat {
			lat, okLat = asFloat(loc["lat"])
		}
		if !okLng {
			lng, okLng = asFloat(loc["lng"])
		}
	} else {
		lat, okLat = asFloat(firstOf(loc, "latitude", "lat"))
		lng, okLng = asFloat(firstOf(loc, "longitude", "lng", "lon"))
	}

	if !okLat || !okLng || math.Abs(lat) > 90 || math.Abs(lng) > 180 {
		return nil
	}
	return &domain.Location{
		Latitude:  lat,
		Longitude: lng,
		Geohash:   geohash.EncodeWithPrecision(lat, lng, geohashPrecision),
	}
}

func nonZero(v float64, ok bool) (float64, bool) {
	return v, ok && v != 0
}

func first(item map[string]interface{}, field string) interface{} {
	return firstOf(item, fieldAliases[field]...)
}

// firstOf returns the first truthy value among keys.
func firstOf(item map[string]interface{}, keys ...string) interface{} {
	for _, key := range keys {
		if v := lookup(item, key); truthy(v) {
			return v
		}
	}
	return nil
}

func lookup(item map[string]interface{}, path string) interface{} {
	var cur interface{} = item
	for _, segment := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]interface{}:
			cur = node[segment]
		case []interface{}:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			cur = node[i]
		default:
			return nil
		}
	}
	return cur
}

// truthy treats null, "", false and 0 as absent, so an empty field falls
// through to the next alias.
func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case float64:
		return val != 0
	default:
		return true
	}
}

func asString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case map[string]interface{}:
		// e.g. {"url": "..."} image objects
		return asString(firstOf(val, "url", "src", "path"))
	default:
		return ""
	}
}

func asFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func asStringSlice(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
