package service

import (
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/solemarket/storefront/internal/core/domain"
	"github.com/solemarket/storefront/internal/core/port"
)

var _ port.ProductBrowser = (*CatalogService)(nil)
var _ port.CatalogReceiver = (*CatalogService)(nil)

// CatalogService serves the read-only product catalog: the filter and
// sort pipeline plus the facet options the filter UI renders. The
// product list is swapped wholesale on reload, never mutated in place.
type CatalogService struct {
	mu       sync.Mutex
	products []domain.Product
	collator *collate.Collator
}

func NewCatalogService(tag language.Tag, products []domain.Product) *CatalogService {
	return &CatalogService{
		products: products,
		collator: collate.New(tag),
	}
}

// Browse applies the filter selection (every clause ANDed, empty facet
// sets permissive) and sorts the result. The sort is stable, so ties
// keep catalog order.
func (s *CatalogService) Browse(
	sel domain.FilterSelection, sort domain.SortKey,
) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Product
	for _, p := range s.products {
		if sel.Matches(p) {
			out = append(out, p)
		}
	}

	switch sort {
	case domain.SortByPriceAsc:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return cmpFloat(a.Price, b.Price)
		})
	case domain.SortByPriceDesc:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return cmpFloat(b.Price, a.Price)
		})
	case domain.SortByRating:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return cmpFloat(b.RatingOrZero(), a.RatingOrZero())
		})
	default:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return s.collator.CompareString(a.Name, b.Name)
		})
	}
	return out
}

// Facets derives the filter options from the catalog itself. The
// managed category list is an admin concern and deliberately not the
// source of shopper-facing facets.
func (s *CatalogService) Facets() domain.FacetOptions {
	s.mu.Lock()
	defer s.mu.Unlock()

	opts := domain.FacetOptions{Availability: domain.AvailabilityStates()}
	for i, p := range s.products {
		if !slices.Contains(opts.Categories, p.Category) {
			opts.Categories = append(opts.Categories, p.Category)
		}
		if !slices.Contains(opts.Brands, p.Brand) {
			opts.Brands = append(opts.Brands, p.Brand)
		}
		if i == 0 || p.Price < opts.PriceMin {
			opts.PriceMin = p.Price
		}
		if p.Price > opts.PriceMax {
			opts.PriceMax = p.Price
		}
	}
	return opts
}

func (s *CatalogService) Product(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Replace swaps in a new product list, used by the catalog file
// watcher.
func (s *CatalogService) Replace(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
