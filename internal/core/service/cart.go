package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/solemarket/storefront/internal/core/domain"
	"github.com/solemarket/storefront/internal/core/port"
	"github.com/solemarket/storefront/pkg/retry"
	"github.com/solemarket/storefront/pkg/schema"
)

var _ port.CartEditor = (*CartService)(nil)

// CartService owns the session line items and keeps the derived totals
// consistent. Every mutation is written through to the snapshot store;
// the in-memory cart stays authoritative even when the write fails.
type CartService struct {
	store    port.SnapshotStore
	serde    schema.Serde
	key      string
	retryCfg retry.Config
	cart     domain.Cart
}

// NewCartService restores the prior session snapshot. A missing key
// starts an empty cart; an unreadable or undecodable snapshot is logged
// and replaced with an empty cart, never an error.
func NewCartService(
	ctx context.Context, store port.SnapshotStore, serde schema.Serde, key string,
) *CartService {
	const op = "NewCartService"
	log := slog.With("op", op)

	s := &CartService{
		store: store,
		serde: serde,
		key:   key,
		retryCfg: retry.Config{
			MaxAttempts: 3,
			Backoff:     retry.LinearBackoff(50 * time.Millisecond),
		},
	}

	data, err := store.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, port.ErrSnapshotNotFound) {
			log.Warn("failed to read cart snapshot, starting empty", "err", err)
		}
		return s
	}

	var snap schema.CartSnapshotV1
	if err := serde.Decode(data, &snap); err != nil {
		log.Warn("failed to decode cart snapshot, starting empty", "err", err)
		return s
	}

	s.cart = cartFromSnapshot(snap)
	log.Info("cart restored", "items", len(s.cart.Items))
	return s
}

// Add merges the quantity into an existing line item for the same
// product id, or appends a new line.
func (s *CartService) Add(ctx context.Context, p domain.Product, quantity int) error {
	const op = "CartService.Add"

	if quantity < 1 {
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidQuantity)
	}

	merged := false
	for i := range s.cart.Items {
		if s.cart.Items[i].Product.ID == p.ID {
			s.cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.cart.Items = append(s.cart.Items, domain.CartItem{Product: p, Quantity: quantity})
	}

	s.cart.Recalculate()
	return s.persist(ctx, op)
}

// Remove deletes the line item for productID; absent id is a no-op.
func (s *CartService) Remove(ctx context.Context, productID string) error {
	const op = "CartService.Remove"

	items := s.cart.Items[:0]
	for _, it := range s.cart.Items {
		if it.Product.ID != productID {
			items = append(items, it)
		}
	}
	s.cart.Items = items

	s.cart.Recalculate()
	return s.persist(ctx, op)
}

// SetQuantity replaces the quantity of an existing line item. A
// quantity of zero or less removes the line; an absent id is dropped
// silently.
func (s *CartService) SetQuantity(ctx context.Context, productID string, quantity int) error {
	const op = "CartService.SetQuantity"

	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}

	for i := range s.cart.Items {
		if s.cart.Items[i].Product.ID == productID {
			s.cart.Items[i].Quantity = quantity
			break
		}
	}

	s.cart.Recalculate()
	return s.persist(ctx, op)
}

func (s *CartService) Clear(ctx context.Context) error {
	const op = "CartService.Clear"

	s.cart = domain.Cart{}
	return s.persist(ctx, op)
}

func (s *CartService) Cart() domain.Cart {
	return s.cart.Clone()
}

func (s *CartService) ItemCount() int {
	return s.cart.ItemCount()
}

// persist writes the whole cart through to the snapshot store,
// retrying transient failures. The final error is surfaced to the
// caller; the in-memory state is already updated.
func (s *CartService) persist(ctx context.Context, op string) error {
	data, err := s.serde.Encode(snapshotFromCart(s.cart))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = retry.Do(ctx, s.retryCfg, func() error {
		return s.store.Write(ctx, s.key, data)
	})
	if err != nil {
		slog.Error("failed to persist cart snapshot", "op", op, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func snapshotFromCart(c domain.Cart) schema.CartSnapshotV1 {
	snap := schema.CartSnapshotV1{
		Items:    make([]schema.LineItemV1, 0, len(c.Items)),
		Subtotal: c.Subtotal,
		Total:    c.Total,
		Tax:      c.Tax,
	}
	for _, it := range c.Items {
		snap.Items = append(snap.Items, schema.LineItemV1{
			Product:  productToSchema(it.Product),
			Quantity: it.Quantity,
		})
	}
	return snap
}

func cartFromSnapshot(snap schema.CartSnapshotV1) domain.Cart {
	c := domain.Cart{
		Items:    make([]domain.CartItem, 0, len(snap.Items)),
		Subtotal: snap.Subtotal,
		Total:    snap.Total,
		Tax:      snap.Tax,
	}
	for _, it := range snap.Items {
		c.Items = append(c.Items, domain.CartItem{
			Product:  productFromSchema(it.Product),
			Quantity: it.Quantity,
		})
	}
	return c
}

func productToSchema(p domain.Product) schema.ProductV1 {
	return schema.ProductV1{
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
		Availability:  string(p.Availability),
		Stock:         p.Stock,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
	}
}

func productFromSchema(p schema.ProductV1) domain.Product {
	return domain.Product{
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
	}
}
