package domain

import (
	"net/url"
	"strconv"
)

const (
	PurposeSale = "sale"
	PurposeRent = "rent"
)

// BedroomsFiveOrMore is the bedroom filter value meaning "5 or more".
const BedroomsFiveOrMore = "5+"

// Property - canonical listing record. Every source (sample set, marketplace API)
// is converted to this shape before filtering or rendering.
type Property struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        int64     `json:"price"`
	City         string    `json:"city"`
	PropertyType string    `json:"propertyType"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    *int      `json:"bathrooms,omitempty"`
	Area         float64   `json:"area"`
	Image        string    `json:"image,omitempty"`
	Images       []string  `json:"images,omitempty"`
	Purpose      string    `json:"purpose"`
	Location     *Location `json:"location,omitempty"`
	Amenities    []string  `json:"amenities,omitempty"`
	CreatedAt    string    `json:"createdAt,omitempty"`
	UpdatedAt    string    `json:"updatedAt,omitempty"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Geohash   string  `json:"geohash,omitempty"`
}

// SearchParams - flat set of optional filters. Empty string (or zero for
// pagination) means "no constraint". Numeric filters stay strings because they
// come straight from query parameters and "5+" is a valid bedrooms value.
type SearchParams struct {
	Query        string `json:"query,omitempty"`
	City         string `json:"city,omitempty"`
	PropertyType string `json:"propertyType,omitempty"`
	Purpose      string `json:"purpose,omitempty"`
	Bedrooms     string `json:"bedrooms,omitempty"`
	MinPrice     string `json:"minPrice,omitempty"`
	MaxPrice     string `json:"maxPrice,omitempty"`
	Page         int    `json:"page,omitempty"`
	Limit        int    `json:"limit,omitempty"`
}

// ParseSearchParams reads the filter set from URL query values.
// Invalid page/limit values are dropped.
func ParseSearchParams(q url.Values) SearchParams {
	params := SearchParams{
		Query:        q.Get("query"),
		City:         q.Get("city"),
		PropertyType: q.Get("propertyType"),
		Purpose:      q.Get("purpose"),
		Bedrooms:     q.Get("bedrooms"),
		MinPrice:     q.Get("minPrice"),
		MaxPrice:     q.Get("maxPrice"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		params.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		params.Limit = limit
	}
	return params
}

// Values renders the non-empty filters as query values.
func (p SearchParams) Values() url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("query", p.Query)
	set("city", p.City)
	set("propertyType", p.PropertyType)
	set("purpose", p.Purpose)
	set("bedrooms", p.Bedrooms)
	set("minPrice", p.MinPrice)
	set("maxPrice", p.MaxPrice)
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// Source tells the caller where a result set came from.
type Source string

const (
	SourceUpstream Source = "upstream"
	SourceSample   Source = "sample"
)

// SearchResult - output of the search facade.
type SearchResult struct {
	Properties []Property
	Source     Source
}

// DetailsResult - output of the details facade.
type DetailsResult struct {
	Property Property
	Source   Source
}

// APIStatus - informational availability report of the marketplace API.
type APIStatus struct {
	Available     bool
	Message       string
	GuestMode     bool
	MockData      bool
	APIConfigured bool
}

// FilterOptions - values a filter form can offer, derived from the sample set.
type FilterOptions struct {
	Cities        []string
	PropertyTypes []string
	Purposes      []string
	PriceMin      int64
	PriceMax      int64
	Count         int
}
