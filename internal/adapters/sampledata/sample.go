// Package sampledata holds the compiled-in fallback listing set.
package sampledata

import (
	"sort"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
)

// Dataset - read-only view over the compiled-in records, safe for concurrent use.
type Dataset struct {
	records []domain.Property
	byID    map[string]int
}

// New returns the default dataset.
func New() *Dataset {
	return NewFromRecords(records)
}

// NewFromRecords builds a dataset over an arbitrary record list; the first
// record wins when ids repeat.
func NewFromRecords(list []domain.Property) *Dataset {
	d := &Dataset{
		records: list,
		byID:    make(map[string]int, len(list)),
	}
	for i, r := range list {
		if _, exists := d.byID[r.ID]; !exists {
			d.byID[r.ID] = i
		}
	}
	return d
}

// All returns the records in their authored order. The returned slice is a
// copy; callers may reslice it freely.
func (d *Dataset) All() []domain.Property {
	out := make([]domain.Property, len(d.records))
	copy(out, d.records)
	return out
}

func (d *Dataset) FindByID(id string) (domain.Property, bool) {
	i, ok := d.byID[id]
	if !ok {
		return domain.Property{}, false
	}
	return d.records[i], true
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// FilterOptions collects the distinct values a filter form can offer.
func (d *Dataset) FilterOptions() domain.FilterOptions {
	opts := domain.FilterOptions{Count: len(d.records)}
	if len(d.records) == 0 {
		return opts
	}

	cities := make(map[string]struct{})
	types := make(map[string]struct{})
	purposes := make(map[string]struct{})

	opts.PriceMin = d.records[0].Price
	opts.PriceMax = d.records[0].Price
	for _, r := range d.records {
		cities[r.City] = struct{}{}
		types[r.PropertyType] = struct{}{}
		purposes[r.Purpose] = struct{}{}
		if r.Price < opts.PriceMin {
			opts.PriceMin = r.Price
		}
		if r.Price > opts.PriceMax {
			opts.PriceMax = r.Price
		}
	}

	opts.Cities = sortedKeys(cities)
	opts.PropertyTypes = sortedKeys(types)
	opts.Purposes = sortedKeys(purposes)
	return opts
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
