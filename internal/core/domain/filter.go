package domain

import (
	"slices"
	"strings"
)

type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceAsc  SortKey = "price-low"
	SortByPriceDesc SortKey = "price-high"
	SortByRating    SortKey = "rating"
)

// FilterSelection is the active storefront query. An empty facet set
// means "no constraint". The zero value matches nothing because of the
// price range; use NewFilterSelection for a permissive default.
type FilterSelection struct {
	Search       string
	Categories   []string
	Brands       []string
	PriceMin     float64
	PriceMax     float64
	Availability []Availability
}

func NewFilterSelection(priceMax float64) FilterSelection {
	return FilterSelection{PriceMax: priceMax}
}

// Matches reports whether the product passes every filter clause.
func (f FilterSelection) Matches(p Product) bool {
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
		return false
	}
	if len(f.Brands) > 0 && !slices.Contains(f.Brands, p.Brand) {
		return false
	}
	if p.Price < f.PriceMin || p.Price > f.PriceMax {
		return false
	}
	if len(f.Availability) > 0 && !slices.Contains(f.Availability, p.Availability) {
		return false
	}
	return true
}

func matchesSearch(p Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// FacetOptions is what the filter UI renders: the facet values present
// in the catalog plus its observed price bounds.
type FacetOptions struct {
	Categories   []string
	Brands       []string
	PriceMin     float64
	PriceMax     float64
	Availability []Availability
}
