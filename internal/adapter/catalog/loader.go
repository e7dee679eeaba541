// Package catalog supplies the product list: a built-in seed, an
// optional JSON catalog file, and a watcher that reloads the file on
// change.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/solemarket/storefront/internal/core/domain"
)

type (
	productJSON struct {
		ID            string   `json:"id"`
		Name          string   `json:"name"`
		Brand         string   `json:"brand"`
		Category      string   `json:"category"`
		Type          string   `json:"type"`
		Price         float64  `json:"price"`
		OriginalPrice *float64 `json:"original_price,omitempty"`
		Discount      *int     `json:"discount,omitempty"`
		Image         string   `json:"image"`
		Images        []string `json:"images,omitempty"`
		Description   string   `json:"description"`
		Availability  string   `json:"availability"`
		Stock         int      `json:"stock"`
		Rating        *float64 `json:"rating,omitempty"`
		Reviews       *int     `json:"reviews,omitempty"`
	}
)

// Load reads a JSON catalog file. The catalog is read-only input: any
// malformed file is an error, never a partial load.
func Load(path string) ([]domain.Product, error) {
	const op = "catalog.Load"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ps []productJSON
	if err := json.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("%s: failed to parse %q: %w", op, path, err)
	}

	return toDomain(ps), nil
}

func toDomain(ps []productJSON) []domain.Product {
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, domain.Product{
			ID:            p.ID,
			Name:          p.Name,
			Brand:         p.Brand,
			Category:      p.Category,
			Type:          p.Type,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Discount:      p.Discount,
			Image:         p.Image,
			Images:        p.Images,
			Description:   p.Description,
			Availability:  domain.Availability(p.Availability),
			Stock:         p.Stock,
			Rating:        p.Rating,
			Reviews:       p.Reviews,
		})
	}
	return out
}
