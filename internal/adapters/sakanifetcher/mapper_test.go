package sakanifetcher

import (
	"testing"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"

	"github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProperties_Aliases(t *testing.T) {
	raw := []byte(`[{
		"id": 0,
		"propertyId": 17,
		"name": "Flat in Jeddah",
		"details": "sea view",
		"priceAmount": "250000",
		"type": "شقة",
		"bedroomCount": "3",
		"bathroomCount": 2,
		"size": 120.5,
		"location": {"city": "جدة", "coordinates": [39.17, 21.54]},
		"features": ["pool", "gym"],
		"forRent": true,
		"created": "2024-01-01"
	}]`)

	got, err := NormalizeProperties(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, "17", p.ID)
	assert.Equal(t, "Flat in Jeddah", p.Title)
	assert.Equal(t, "sea view", p.Description)
	assert.Equal(t, int64(250000), p.Price)
	assert.Equal(t, "شقة", p.PropertyType)
	assert.Equal(t, 3, p.Bedrooms)
	require.NotNil(t, p.Bathrooms)
	assert.Equal(t, 2, *p.Bathrooms)
	assert.Equal(t, 120.5, p.Area)
	assert.Equal(t, "جدة", p.City)
	assert.Equal(t, []string{"pool", "gym"}, p.Amenities)
	assert.Equal(t, domain.PurposeRent, p.Purpose)
	assert.Equal(t, "2024-01-01", p.CreatedAt)
	assert.Empty(t, p.UpdatedAt)

	require.NotNil(t, p.Location)
	assert.Equal(t, 21.54, p.Location.Latitude)
	assert.Equal(t, 39.17, p.Location.Longitude)
	assert.Equal(t, geohash.EncodeWithPrecision(21.54, 39.17, 9), p.Location.Geohash)
}

func TestNormalizeProperties_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantIDs []string
	}{
		{name: "bare array", raw: `[{"id":"a"},{"id":"b"}]`, wantIDs: []string{"a", "b"}},
		{name: "data array", raw: `{"data":[{"id":"a"}]}`, wantIDs: []string{"a"}},
		{name: "nested data array", raw: `{"data":{"data":[{"id":"a"},{"id":"b"}]}}`, wantIDs: []string{"a", "b"}},
		{name: "empty data array", raw: `{"data":[]}`, wantIDs: []string{}},
		{name: "unknown envelope", raw: `{"results":[{"id":"a"}]}`, wantIDs: []string{}},
		{name: "null", raw: `null`, wantIDs: []string{}},
		{name: "scalar", raw: `"nothing"`, wantIDs: []string{}},
		{name: "non-object items are skipped", raw: `[1, {"id":"a"}, "x"]`, wantIDs: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeProperties([]byte(tt.raw))
			require.NoError(t, err)
			require.NotNil(t, got)

			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestNormalizeProperties_Malformed(t *testing.T) {
	_, err := NormalizeProperties([]byte(`{"data": [`))
	assert.Error(t, err)
}

func TestNormalizeProperties_Defaults(t *testing.T) {
	got, err := NormalizeProperties([]byte(`[{"id":"x","price":"n/a"}]`))
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	assert.Zero(t, p.Price)
	assert.Zero(t, p.Bedrooms)
	assert.Zero(t, p.Area)
	assert.Nil(t, p.Bathrooms)
	assert.Nil(t, p.Location)
	assert.Empty(t, p.Images)
	assert.Equal(t, domain.PurposeSale, p.Purpose)
}

func TestNormalizeProperties_Images(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantImage  string
		wantImages []string
	}{
		{
			name:       "explicit image wins",
			raw:        `[{"image":"main.jpg","images":["a.jpg","b.jpg"]}]`,
			wantImage:  "main.jpg",
			wantImages: []string{"a.jpg", "b.jpg"},
		},
		{
			name:       "first of images",
			raw:        `[{"images":["a.jpg","b.jpg"]}]`,
			wantImage:  "a.jpg",
			wantImages: []string{"a.jpg", "b.jpg"},
		},
		{
			name:       "image objects",
			raw:        `[{"images":[{"url":"a.jpg"},{"src":"b.jpg"}]}]`,
			wantImage:  "a.jpg",
			wantImages: []string{"a.jpg", "b.jpg"},
		},
		{
			name:       "thumbnail only",
			raw:        `[{"thumbnail":"t.jpg"}]`,
			wantImage:  "t.jpg",
			wantImages: []string{"t.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeProperties([]byte(tt.raw))
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantImage, got[0].Image)
			assert.Equal(t, tt.wantImages, got[0].Images)
		})
	}
}

func TestNormalizeProperties_Purpose(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: `[{"purpose":"rent"}]`, want: domain.PurposeRent},
		{raw: `[{"purpose":"For Rent"}]`, want: domain.PurposeRent},
		{raw: `[{"listingType":"SALE"}]`, want: domain.PurposeSale},
		{raw: `[{"forRent":false}]`, want: domain.PurposeSale},
		{raw: `[{"forRent":true}]`, want: domain.PurposeRent},
		{raw: `[{"purpose":"auction","forRent":true}]`, want: domain.PurposeRent},
		{raw: `[{}]`, want: domain.PurposeSale},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeProperties([]byte(tt.raw))
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Purpose)
		})
	}
}

func TestNormalizeProperties_Location(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLat float64
		wantLng float64
		wantNil bool
	}{
		{name: "geojson order", raw: `[{"location":{"coordinates":[46.67,24.71]}}]`, wantLat: 24.71, wantLng: 46.67},
		{name: "zero coordinates fall back to lat lng", raw: `[{"location":{"coordinates":[0,0],"lat":24.71,"lng":46.67}}]`, wantLat: 24.71, wantLng: 46.67},
		{name: "latitude longitude object", raw: `[{"location":{"latitude":"24.71","longitude":46.67}}]`, wantLat: 24.71, wantLng: 46.67},
		{name: "lat lng object", raw: `[{"location":{"lat":24.71,"lng":46.67}}]`, wantLat: 24.71, wantLng: 46.67},
		{name: "city only", raw: `[{"location":{"city":"الرياض"}}]`, wantNil: true},
		{name: "out of range", raw: `[{"location":{"lat":124.71,"lng":46.67}}]`, wantNil: true},
		{name: "not an object", raw: `[{"location":"Riyadh"}]`, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeProperties([]byte(tt.raw))
			require.NoError(t, err)
			require.Len(t, got, 1)

			if tt.wantNil {
				assert.Nil(t, got[0].Location)
				return
			}
			require.NotNil(t, got[0].Location)
			assert.Equal(t, tt.wantLat, got[0].Location.Latitude)
			assert.Equal(t, tt.wantLng, got[0].Location.Longitude)
			assert.Len(t, got[0].Location.Geohash, 9)
		})
	}
}

func TestNormalizeProperty(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
		wantID string
	}{
		{name: "bare object", raw: `{"id":"p-1","title":"T"}`, wantOK: true, wantID: "p-1"},
		{name: "data object", raw: `{"data":{"_id":"p-2"}}`, wantOK: true, wantID: "p-2"},
		{name: "data array takes first", raw: `{"data":[{"id":"p-3"},{"id":"p-4"}]}`, wantOK: true, wantID: "p-3"},
		{name: "empty array", raw: `[]`, wantOK: false},
		{name: "scalar", raw: `42`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := NormalizeProperty([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, got.ID)
			}
		})
	}

	_, _, err := NormalizeProperty([]byte(`{`))
	assert.Error(t, err)
}

func TestMapper_ImplementsPort(t *testing.T) {
	m := NewMapper()

	list, err := m.NormalizeList([]byte(`{"data":[{"id":"a"}]}`))
	require.NoError(t, err)
	assert.Len(t, list, 1)

	item, ok, err := m.NormalizeItem([]byte(`{"id":"a"}`))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", item.ID)
}
