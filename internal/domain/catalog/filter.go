// internal/domain/catalog/filter.go
package catalog

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// AllCategories is the navigation category that disables category filtering
const AllCategories = "all"

// TagNew marks new arrivals; the "newest" sort filters on it
const TagNew = "New"

// TagBestseller marks best sellers
const TagBestseller = "Bestseller"

// SortKey selects the listing order
type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortNewest     SortKey = "newest"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortRating     SortKey = "rating"
)

// ParseSortKey parses a sort key; empty means popularity
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return SortPopularity, nil
	case SortPopularity, SortNewest, SortPriceLow, SortPriceHigh, SortRating:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// Filter holds the listing predicates. Zero values are pass-through.
type Filter struct {
	Category   string
	Categories []string
	Tags       []string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       SortKey
}

// IsActive reports whether any narrowing predicate is set
func (f Filter) IsActive() bool {
	return (f.Category != "" && f.Category != AllCategories) ||
		len(f.Categories) > 0 ||
		len(f.Tags) > 0 ||
		f.MinPrice != nil ||
		f.MaxPrice != nil
}

// Apply returns the products matching every active predicate, in the
// requested order. The input slice is never modified.
func Apply(products []Product, f Filter) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		if f.matches(&p) {
			result = append(result, p)
		}
	}

	switch f.Sort {
	case SortPriceLow:
		slices.SortStableFunc(result, func(a, b Product) int { return a.Price.Cmp(b.Price) })
	case SortPriceHigh:
		slices.SortStableFunc(result, func(a, b Product) int { return b.Price.Cmp(a.Price) })
	case SortRating:
		slices.SortStableFunc(result, func(a, b Product) int { return compareFloat(b.Rating, a.Rating) })
	case SortNewest:
		// "Newest" narrows to items tagged New rather than ordering by date.
		result = slices.DeleteFunc(result, func(p Product) bool { return !p.HasTag(TagNew) })
	}

	return result
}

func (f Filter) matches(p *Product) bool {
	if f.Category != "" && f.Category != AllCategories && p.Category != f.Category {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
		return false
	}
	if len(f.Tags) > 0 && !slices.ContainsFunc(p.Tags, func(t string) bool { return slices.Contains(f.Tags, t) }) {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
