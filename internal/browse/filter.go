// Package browse holds the client-side listing filter: the browse page
// fetches a full listing set once and narrows it locally as criteria change.
package browse

import (
	"strconv"
	"strings"

	"homify/internal/domain"
)

// TypeAll and BedsAny are the selector values that disable their predicate.
const TypeAll = "all"

// Criteria is one filter submission. Absent price bounds are nil; MinBeds
// zero means "any".
type Criteria struct {
	Keyword     string
	ListingType string
	MinPrice    *float64
	MaxPrice    *float64
	MinBeds     int
}

// CriteriaFromQuery builds Criteria from raw form values. Parsing is lenient:
// a non-numeric bound is treated as absent, never as a reason to reject
// listings, and an unparseable beds selector falls back to "any".
func CriteriaFromQuery(keyword, listingType, minPrice, maxPrice, minBeds string) Criteria {
	c := Criteria{
		Keyword:     strings.TrimSpace(keyword),
		ListingType: strings.TrimSpace(listingType),
	}
	if c.ListingType == "" {
		c.ListingType = TypeAll
	}
	c.MinPrice = parsePrice(minPrice)
	c.MaxPrice = parsePrice(maxPrice)
	if v, err := strconv.Atoi(strings.TrimSpace(minBeds)); err == nil && v > 0 {
		c.MinBeds = v
	}
	return c
}

func parsePrice(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}

// Filter returns the listings matching c, in input order. Pure: the input
// slice is never mutated and the result is always a subset of it.
func Filter(listings []domain.Listing, c Criteria) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if matches(l, c) {
			out = append(out, l)
		}
	}
	return out
}

// matches evaluates the predicates in fixed order, short-circuiting on the
// first failure. All criteria are AND-combined.
func matches(l domain.Listing, c Criteria) bool {
	if c.Keyword != "" {
		kw := strings.ToLower(c.Keyword)
		if !strings.Contains(strings.ToLower(l.Title), kw) &&
			!strings.Contains(strings.ToLower(l.Location), kw) {
			return false
		}
	}
	if c.ListingType != "" && !strings.EqualFold(c.ListingType, TypeAll) {
		if !strings.EqualFold(l.ListingType, c.ListingType) {
			return false
		}
	}
	if c.MinPrice != nil && l.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && l.Price > *c.MaxPrice {
		return false
	}
	if c.MinBeds > 0 && l.Bedrooms < c.MinBeds {
		return false
	}
	return true
}
