package domain

type Availability string

const (
	InStock    Availability = "in-stock"
	Limited    Availability = "limited"
	OutOfStock Availability = "out-of-stock"
)

// AvailabilityStates lists every state in display order.
func AvailabilityStates() []Availability {
	return []Availability{InStock, Limited, OutOfStock}
}

type Product struct {
	ID            string
	Name          string
	Brand         string
	Category      string
	Type          string
	Price         float64
	OriginalPrice *float64
	Discount      *int
	Image         string
	Images        []string
	Description   string
	Availability  Availability
	Stock         int
	Rating        *float64
	Reviews       *int
}

// RatingOrZero treats an unrated product as rating 0 for sorting.
func (p Product) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}
