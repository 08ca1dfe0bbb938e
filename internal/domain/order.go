package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryMethod selects between store pickup and courier delivery.
type DeliveryMethod string

const (
	DeliveryPickup   DeliveryMethod = "PICKUP"
	DeliveryDelivery DeliveryMethod = "DELIVERY"
)

// ParseDeliveryMethod normalizes a wire value, defaulting to pickup
// when the value is empty.
func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch DeliveryMethod(strings.ToUpper(s)) {
	case DeliveryPickup, "":
		return DeliveryPickup, nil
	case DeliveryDelivery:
		return DeliveryDelivery, nil
	}
	return "", fmt.Errorf("unknown delivery method %q", s)
}

// ErrValidation wraps any contact-detail validation failure.
var ErrValidation = errors.New("order details validation failed")

// OrderDetails is the contact form submitted at checkout.
type OrderDetails struct {
	CustomerName   string         `json:"customer_name"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	Address        string         `json:"address,omitempty"`
}

// Validate enforces the required-field contract: name, phone and email
// are always required, the address only for delivery orders.
func (d OrderDetails) Validate() error {
	var missing []string
	if strings.TrimSpace(d.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(d.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(d.Email) == "" {
		missing = append(missing, "email")
	}
	if d.DeliveryMethod == DeliveryDelivery && strings.TrimSpace(d.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// OrderTotals is the priced breakdown for a cart plus delivery method.
// Tax and GrandTotal carry two decimal places.
type OrderTotals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
}

// OrderConfirmation is returned once an order intent has been accepted.
// It carries the totals the order was placed against; nothing is
// retained server-side.
type OrderConfirmation struct {
	OrderNumber    string         `json:"order_number"`
	ItemCount      int            `json:"item_count"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	Totals         OrderTotals    `json:"totals"`
	PlacedAt       time.Time      `json:"placed_at"`
}
