package sampledata

import (
	"testing"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataset_Validate(t *testing.T) {
	d := New()
	require.Equal(t, 100, d.Len())
	assert.NoError(t, d.Validate())
}

func TestValidateProperties_RejectsBadRecords(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.Property
	}{
		{
			name:    "unknown purpose",
			records: []domain.Property{{ID: "1", Title: "t", City: "c", PropertyType: "p", Purpose: "lease"}},
		},
		{
			name:    "negative bedrooms",
			records: []domain.Property{{ID: "1", Title: "t", City: "c", PropertyType: "p", Purpose: "sale", Bedrooms: -1}},
		},
		{
			name: "duplicate id",
			records: []domain.Property{
				{ID: "1", Title: "t", City: "c", PropertyType: "p", Purpose: "sale"},
				{ID: "1", Title: "t", City: "c", PropertyType: "p", Purpose: "rent"},
			},
		},
		{
			name:    "empty id",
			records: []domain.Property{{Title: "t", City: "c", PropertyType: "p", Purpose: "sale"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateProperties(tt.records))
		})
	}
}

func TestDataset_FindByID(t *testing.T) {
	d := New()

	p, ok := d.FindByID("42")
	require.True(t, ok)
	assert.Equal(t, "42", p.ID)

	_, ok = d.FindByID("1000")
	assert.False(t, ok)
}

func TestDataset_AllReturnsCopy(t *testing.T) {
	d := New()
	all := d.All()
	all[0].Title = "changed"

	p, _ := d.FindByID(all[0].ID)
	assert.NotEqual(t, "changed", p.Title)
}

// Golden result used by the web client's default "Riyadh, for sale" view.
func TestDataset_RiyadhForSale(t *testing.T) {
	got := filter.Apply(New().All(), domain.SearchParams{City: "الرياض", Purpose: domain.PurposeSale})

	var gotIDs []string
	for _, p := range got {
		assert.Equal(t, "الرياض", p.City)
		assert.Equal(t, domain.PurposeSale, p.Purpose)
		gotIDs = append(gotIDs, p.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13", "78", "79", "80", "81"}, gotIDs)
}

func TestDataset_PriceRange(t *testing.T) {
	got := filter.Apply(New().All(), domain.SearchParams{MinPrice: "1000000", MaxPrice: "2000000"})
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Price, int64(1000000))
		assert.LessOrEqual(t, p.Price, int64(2000000))
	}
}

func TestDataset_FilterOptions(t *testing.T) {
	opts := New().FilterOptions()

	assert.Equal(t, 100, opts.Count)
	assert.Len(t, opts.Cities, 8)
	assert.ElementsMatch(t, []string{"شقة", "فيلا", "تاون هاوس"}, opts.PropertyTypes)
	assert.Equal(t, []string{"rent", "sale"}, opts.Purposes)
	assert.Equal(t, int64(32000), opts.PriceMin)
	assert.Equal(t, int64(6200000), opts.PriceMax)
}
