// Package cart holds the per-session shopping carts. All state lives
// in memory for the duration of a browser session.
package cart

import (
	"errors"

	"github.com/adprintpro/storefront/internal/domain"
)

// Common errors returned by the store
var (
	ErrItemNotFound = errors.New("cart item not found")
	ErrEmptyCart    = errors.New("cart is empty")
)

// Store defines the session cart operations used by handlers and the
// checkout service.
type Store interface {
	// Get returns the cart and checkout status for a session. An
	// unknown session yields an empty cart in the browsing state.
	Get(sessionID string) (domain.Cart, domain.CheckoutStatus)

	// AddItem freezes the given configuration into a new cart item and
	// appends it, preserving insertion order. The created item is
	// returned with its assigned ID.
	AddItem(sessionID string, product domain.Product, cfg domain.PrintConfig, totalPrice int64, uploadID string) domain.CartItem

	// RemoveItem deletes a single item by ID.
	RemoveItem(sessionID, itemID string) error

	// Take atomically snapshots and clears a non-empty cart, marking
	// the session as submitted. Returns ErrEmptyCart otherwise.
	Take(sessionID string) ([]domain.CartItem, error)

	// Clear empties the cart and resets the session to browsing.
	Clear(sessionID string)

	// Close shuts down the store and any background processes
	Close() error
}
