package catalog

import "github.com/solemarket/storefront/internal/core/domain"

// Seed is the built-in catalog used when no catalog file is
// configured.
func Seed() []domain.Product {
	return []domain.Product{
		{
			ID:            "1",
			Name:          "Air Max Classic White",
			Brand:         "Nike",
			Category:      "Zapatillas",
			Type:          "Running",
			Price:         129.99,
			OriginalPrice: ptr(149.99),
			Discount:      ptr(13),
			Image:         "sneaker-1.jpg",
			Images:        []string{"sneaker-1.jpg"},
			Description:   "Zapatillas deportivas clásicas en color blanco con detalles azules. Perfectas para running y uso diario.",
			Availability:  domain.InStock,
			Stock:         25,
			Rating:        ptr(4.8),
			Reviews:       ptr(234),
		},
		{
			ID:            "2",
			Name:          "Revolution Pro Black",
			Brand:         "Nike",
			Category:      "Zapatillas",
			Type:          "Running",
			Price:         89.99,
			OriginalPrice: ptr(109.99),
			Discount:      ptr(18),
			Image:         "sneaker-2.jpg",
			Images:        []string{"sneaker-2.jpg"},
			Description:   "Zapatillas de running negras con tecnología de amortiguación avanzada y detalles rojos.",
			Availability:  domain.InStock,
			Stock:         18,
			Rating:        ptr(4.6),
			Reviews:       ptr(189),
		},
		{
			ID:           "3",
			Name:         "Canvas High Top Navy",
			Brand:        "Converse",
			Category:     "Zapatillas",
			Type:         "Casual",
			Price:        79.99,
			Image:        "sneaker-3.jpg",
			Images:       []string{"sneaker-3.jpg"},
			Description:  "Zapatillas altas de lona en color azul marino. Estilo clásico y atemporal.",
			Availability: domain.InStock,
			Stock:        32,
			Rating:       ptr(4.5),
			Reviews:      ptr(156),
		},
		{
			ID:            "4",
			Name:          "Basketball Elite Pro",
			Brand:         "Jordan",
			Category:      "Zapatillas",
			Type:          "Basketball",
			Price:         199.99,
			OriginalPrice: ptr(229.99),
			Discount:      ptr(13),
			Image:         "sneaker-4.jpg",
			Images:        []string{"sneaker-4.jpg"},
			Description:   "Zapatillas de basketball de alta gama con colores vibrantes y tecnología de máximo rendimiento.",
			Availability:  domain.Limited,
			Stock:         8,
			Rating:        ptr(4.9),
			Reviews:       ptr(312),
		},
		{
			ID:           "5",
			Name:         "Leather Casual Brown",
			Brand:        "Clarks",
			Category:     "Zapatillas",
			Type:         "Casual",
			Price:        149.99,
			Image:        "sneaker-5.jpg",
			Images:       []string{"sneaker-5.jpg"},
			Description:  "Zapatillas elegantes de cuero marrón. Perfectas para uso casual y semi-formal.",
			Availability: domain.InStock,
			Stock:        15,
			Rating:       ptr(4.7),
			Reviews:      ptr(97),
		},
		{
			ID:            "6",
			Name:          "Glam Pink Metallic",
			Brand:         "Adidas",
			Category:      "Zapatillas",
			Type:          "Lifestyle",
			Price:         119.99,
			OriginalPrice: ptr(139.99),
			Discount:      ptr(14),
			Image:         "sneaker-6.jpg",
			Images:        []string{"sneaker-6.jpg"},
			Description:   "Zapatillas femeninas en rosa con detalles metálicos. Estilo moderno y llamativo.",
			Availability:  domain.InStock,
			Stock:         22,
			Rating:        ptr(4.8),
			Reviews:       ptr(201),
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
