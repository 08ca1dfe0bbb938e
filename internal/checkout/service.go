// Package checkout turns a session cart plus contact details into a
// placed order, clearing the cart in the same step.
package checkout

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adprintpro/storefront/internal/cart"
	"github.com/adprintpro/storefront/internal/domain"
	"github.com/adprintpro/storefront/internal/pricing"
)

// Service drives the browsing -> has-items -> submitted flow for a
// session. No order history is kept: the confirmation is handed back
// to the caller and forgotten.
type Service struct {
	carts cart.Store
	log   zerolog.Logger
}

func NewService(carts cart.Store, log zerolog.Logger) *Service {
	return &Service{carts: carts, log: log}
}

// Summary returns the cart, its status and the totals breakdown for
// the given delivery method. An empty cart is a valid summary, not an
// error.
func (s *Service) Summary(sessionID string, method domain.DeliveryMethod) (domain.Cart, domain.CheckoutStatus, domain.OrderTotals) {
	c, st := s.carts.Get(sessionID)
	return c, st, pricing.Totals(c.Items, method)
}

// PlaceOrder validates the contact details and, if the cart is
// non-empty, consumes it into an order confirmation. Either the whole
// order is placed or no state changes at all: validation runs before
// the cart is touched.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, details domain.OrderDetails) (*domain.OrderConfirmation, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}

	items, err := s.carts.Take(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	totals := pricing.Totals(items, details.DeliveryMethod)
	confirmation := &domain.OrderConfirmation{
		OrderNumber:    newOrderNumber(),
		ItemCount:      len(items),
		DeliveryMethod: details.DeliveryMethod,
		Totals:         totals,
		PlacedAt:       time.Now(),
	}

	s.log.Info().
		Str("order_number", confirmation.OrderNumber).
		Str("delivery_method", string(details.DeliveryMethod)).
		Int("items", len(items)).
		Str("grand_total", totals.GrandTotal.String()).
		Msg("order placed")

	return confirmation, nil
}

// newOrderNumber produces a short human-readable reference like
// AD-88219. Orders are not retained, so the reference only needs to be
// unique enough for a support conversation.
func newOrderNumber() string {
	u := uuid.New()
	n := binary.BigEndian.Uint32(u[0:4])%90000 + 10000
	return fmt.Sprintf("AD-%d", n)
}
