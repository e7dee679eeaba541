// Package payment holds the checkout gateway adapters. Only the stub
// gateway ships today; a real provider adapter replaces it behind the
// same port.
package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/solemarket/storefront/internal/core/domain"
	"github.com/solemarket/storefront/internal/core/port"
)

var _ port.CheckoutGateway = (*StubGateway)(nil)

// StubGateway accepts every order without contacting any provider.
type StubGateway struct{}

func NewStubGateway() StubGateway {
	return StubGateway{}
}

func (StubGateway) Checkout(
	ctx context.Context, cart domain.Cart,
) (port.CheckoutResult, error) {
	const op = "StubGateway.Checkout"

	if err := ctx.Err(); err != nil {
		return port.CheckoutResult{}, fmt.Errorf("%s: %w", op, err)
	}

	res := port.CheckoutResult{
		OrderRef: uuid.NewString(),
		Status:   port.CheckoutAccepted,
	}
	slog.Info("stub gateway accepted order",
		"op", op, "orderRef", res.OrderRef, "total", cart.Total)
	return res, nil
}
