package filter

import (
	"testing"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []domain.Property {
	return []domain.Property{
		{ID: "a", Title: "Villa with Pool", Description: "garden", City: "الرياض", PropertyType: "فيلا", Bedrooms: 5, Price: 3500000, Purpose: domain.PurposeSale},
		{ID: "b", Title: "Small flat", Description: "near METRO", City: "جدة", PropertyType: "شقة", Bedrooms: 2, Price: 45000, Purpose: domain.PurposeRent},
		{ID: "c", Title: "Family flat", Description: "schools nearby", City: "الرياض", PropertyType: "شقة", Bedrooms: 3, Price: 1500000, Purpose: domain.PurposeSale},
		{ID: "d", Title: "Big villa", Description: "seven rooms", City: "الدمام", PropertyType: "فيلا", Bedrooms: 7, Price: 5500000, Purpose: domain.PurposeSale},
		{ID: "e", Title: "Town house", Description: "roof", City: "جدة", PropertyType: "تاون هاوس", Bedrooms: 4, Price: 2000000, Purpose: domain.PurposeSale},
		{ID: "f", Title: "Studio", Description: "", City: "الرياض", PropertyType: "شقة", Bedrooms: 0, Price: 1000000, Purpose: domain.PurposeSale},
	}
}

func ids(records []domain.Property) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		params domain.SearchParams
		want   []string
	}{
		{name: "no constraints", params: domain.SearchParams{}, want: []string{"a", "b", "c", "d", "e", "f"}},
		{name: "query matches title case-insensitively", params: domain.SearchParams{Query: "VILLA"}, want: []string{"a", "d"}},
		{name: "query matches description", params: domain.SearchParams{Query: "metro"}, want: []string{"b"}},
		{name: "query matches city", params: domain.SearchParams{Query: "جدة"}, want: []string{"b", "e"}},
		{name: "city exact", params: domain.SearchParams{City: "الرياض"}, want: []string{"a", "c", "f"}},
		{name: "property type exact", params: domain.SearchParams{PropertyType: "فيلا"}, want: []string{"a", "d"}},
		{name: "purpose", params: domain.SearchParams{Purpose: domain.PurposeRent}, want: []string{"b"}},
		{name: "bedrooms five or more", params: domain.SearchParams{Bedrooms: "5+"}, want: []string{"a", "d"}},
		{name: "bedrooms exact", params: domain.SearchParams{Bedrooms: "3"}, want: []string{"c"}},
		{name: "bedrooms zero", params: domain.SearchParams{Bedrooms: "0"}, want: []string{"f"}},
		{name: "bedrooms unparseable excludes all", params: domain.SearchParams{Bedrooms: "many"}, want: []string{}},
		{name: "price range inclusive", params: domain.SearchParams{MinPrice: "1000000", MaxPrice: "2000000"}, want: []string{"c", "e", "f"}},
		{name: "min price has no upper bound", params: domain.SearchParams{MinPrice: "2000000"}, want: []string{"a", "d", "e"}},
		{name: "max price only", params: domain.SearchParams{MaxPrice: "45000"}, want: []string{"b"}},
		{name: "unparseable price excludes all", params: domain.SearchParams{MinPrice: "cheap"}, want: []string{}},
		{name: "leading digits are parsed", params: domain.SearchParams{MaxPrice: "45000 SAR"}, want: []string{"b"}},
		{name: "conjunction", params: domain.SearchParams{City: "الرياض", Purpose: domain.PurposeSale, PropertyType: "شقة"}, want: []string{"c", "f"}},
		{name: "pagination is ignored", params: domain.SearchParams{Page: 2, Limit: 1}, want: []string{"a", "b", "c", "d", "e", "f"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(fixture(), tt.params)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_BedroomsBoundary(t *testing.T) {
	var records []domain.Property
	for beds := 0; beds <= 9; beds++ {
		records = append(records, domain.Property{ID: string(rune('0' + beds)), Bedrooms: beds})
	}

	got := Apply(records, domain.SearchParams{Bedrooms: "5+"})
	for _, r := range got {
		assert.GreaterOrEqual(t, r.Bedrooms, 5)
	}
	assert.Len(t, got, 5)

	got = Apply(records, domain.SearchParams{Bedrooms: "4"})
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Bedrooms)
}

func TestApply_IsOrderPreservingSubsequence(t *testing.T) {
	input := fixture()
	paramSets := []domain.SearchParams{
		{},
		{Query: "flat"},
		{City: "جدة", MinPrice: "1"},
		{Bedrooms: "5+", Purpose: domain.PurposeSale},
		{MaxPrice: "0"},
	}

	for _, params := range paramSets {
		got := Apply(input, params)
		require.NotNil(t, got)

		// every result appears in the input after the previous one
		pos := 0
		for _, r := range got {
			found := false
			for pos < len(input) {
				if input[pos].ID == r.ID {
					found = true
					pos++
					break
				}
				pos++
			}
			assert.True(t, found, "record %s out of order or duplicated for %+v", r.ID, params)
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	input := fixture()
	before := ids(input)

	_ = Apply(input, domain.SearchParams{City: "جدة"})

	assert.Equal(t, before, ids(input))
}

func TestApply_Idempotent(t *testing.T) {
	params := domain.SearchParams{Purpose: domain.PurposeSale, MinPrice: "1000000"}
	assert.Equal(t, Apply(fixture(), params), Apply(fixture(), params))
}
