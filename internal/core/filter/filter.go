// Package filter applies search parameters to an in-memory listing set.
package filter

import (
	"strconv"
	"strings"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Apply returns the records matching every present constraint of params, in
// their input order. The input slice is not modified. page and limit are
// ignored.
//
// An unparseable bedrooms, minPrice or maxPrice value matches nothing.
func Apply(records []domain.Property, params domain.SearchParams) []domain.Property {
	predicates := buildPredicates(params)

	result := make([]domain.Property, 0, len(records))
	for _, p := range records {
		if matchesAll(p, predicates) {
			result = append(result, p)
		}
	}
	return result
}

type predicate func(p domain.Property) bool

func matchesAll(p domain.Property, predicates []predicate) bool {
	for _, match := range predicates {
		if !match(p) {
			return false
		}
	}
	return true
}

func buildPredicates(params domain.SearchParams) []predicate {
	var predicates []predicate

	if params.Query != "" {
		caser := cases.Lower(language.Und)
		query := caser.String(params.Query)
		predicates = append(predicates, func(p domain.Property) bool {
			return strings.Contains(caser.String(p.Title), query) ||
				strings.Contains(caser.String(p.Description), query) ||
				strings.Contains(caser.String(p.City), query)
		})
	}

	if params.City != "" {
		predicates = append(predicates, func(p domain.Property) bool { return p.City == params.City })
	}

	if params.PropertyType != "" {
		predicates = append(predicates, func(p domain.Property) bool { return p.PropertyType == params.PropertyType })
	}

	if params.Bedrooms != "" {
		predicates = append(predicates, bedroomsPredicate(params.Bedrooms))
	}

	if params.Purpose != "" {
		predicates = append(predicates, func(p domain.Property) bool { return p.Purpose == params.Purpose })
	}

	if params.MinPrice != "" {
		minPrice, err := parseInt(params.MinPrice)
		predicates = append(predicates, func(p domain.Property) bool { return err == nil && p.Price >= minPrice })
	}

	if params.MaxPrice != "" {
		maxPrice, err := parseInt(params.MaxPrice)
		predicates = append(predicates, func(p domain.Property) bool { return err == nil && p.Price <= maxPrice })
	}

	return predicates
}

func bedroomsPredicate(value string) predicate {
	if value == domain.BedroomsFiveOrMore {
		return func(p domain.Property) bool { return p.Bedrooms >= 5 }
	}
	beds, err := parseInt(value)
	if err != nil {
		return func(domain.Property) bool { return false }
	}
	return func(p domain.Property) bool { return int64(p.Bedrooms) == beds }
}

// parseInt accepts a leading integer with trailing garbage ("3 rooms" -> 3),
// the way the web client parses filter values.
func parseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return strconv.ParseInt(s[:end], 10, 64)
}
