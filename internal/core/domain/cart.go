package domain

import "errors"

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyCart       = errors.New("cart is empty")
)

type CartItem struct {
	Product  Product
	Quantity int
}

// Cart holds the session line items in insertion order,
// at most one item per product id.
type Cart struct {
	Items    []CartItem
	Subtotal float64
	Total    float64
	Tax      *float64
}

// Recalculate refreshes the derived totals from the line items.
// Total equals Subtotal until tax calculation is wired in.
func (c *Cart) Recalculate() {
	var subtotal float64
	for _, it := range c.Items {
		subtotal += it.Product.Price * float64(it.Quantity)
	}
	c.Subtotal = subtotal
	c.Total = subtotal
}

// ItemCount is the sum of all quantities, not the number of lines.
func (c Cart) ItemCount() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns a deep copy safe to hand to renderers.
func (c Cart) Clone() Cart {
	out := c
	out.Items = make([]CartItem, len(c.Items))
	copy(out.Items, c.Items)
	if c.Tax != nil {
		tax := *c.Tax
		out.Tax = &tax
	}
	return out
}
