package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/solemarket/storefront/internal/core/domain"
	"github.com/solemarket/storefront/internal/core/port"
)

var _ port.Checkouter = (*CheckoutService)(nil)

// CheckoutService is the initiate-checkout boundary. It hands the cart
// snapshot to the payment gateway and reports the outcome; it does not
// clear the cart.
type CheckoutService struct {
	cart    port.CartEditor
	gateway port.CheckoutGateway
}

func NewCheckoutService(cart port.CartEditor, gateway port.CheckoutGateway) *CheckoutService {
	return &CheckoutService{cart: cart, gateway: gateway}
}

func (s *CheckoutService) Checkout(ctx context.Context) (port.CheckoutResult, error) {
	const op = "CheckoutService.Checkout"
	log := slog.With("op", op)

	cart := s.cart.Cart()
	if cart.IsEmpty() {
		return port.CheckoutResult{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	res, err := s.gateway.Checkout(ctx, cart)
	if err != nil {
		return port.CheckoutResult{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("checkout initiated", "orderRef", res.OrderRef, "status", res.Status)
	return res, nil
}
