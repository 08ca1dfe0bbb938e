// Package pricing implements the price-estimation and order-totals
// engine. Everything here is a pure function over its inputs.
package pricing

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/adprintpro/storefront/internal/domain"
)

const (
	premiumPaperSurcharge = 0.5
	finishSurcharge       = 0.3
	bulkSurchargePer100   = 0.5
	bulkThreshold         = 100

	// MaxQuantity is the largest order quantity the engine prices.
	// The bulk surcharge grows without cap, so quantities are bounded
	// here to keep the arithmetic inside int64 range.
	MaxQuantity = 1_000_000
)

var (
	taxRate     = decimal.NewFromFloat(0.05)
	deliveryFee = decimal.NewFromInt(20)
)

// UnitEstimate computes the unit price for a configuration, rounded to
// the nearest whole AED.
//
// The multiplier starts at 1.0: premium paper adds 0.5, any finish
// other than "None" adds 0.3, and quantities above 100 add a linear
// surcharge of 0.5 per 100 units. Size is not a price factor.
// Quantities above MaxQuantity price as MaxQuantity, so the result is
// always non-negative and non-decreasing in quantity.
func UnitEstimate(basePrice int64, cfg domain.PrintConfig) int64 {
	qty := cfg.Quantity
	if qty > MaxQuantity {
		qty = MaxQuantity
	}

	multiplier := 1.0
	if strings.Contains(cfg.PaperType, "Premium") {
		multiplier += premiumPaperSurcharge
	}
	if cfg.Finish != domain.FinishNone {
		multiplier += finishSurcharge
	}
	if qty > bulkThreshold {
		multiplier += float64(qty) / 100 * bulkSurchargePer100
	}
	return int64(math.Round(float64(basePrice) * multiplier))
}

// Totals computes the order breakdown from the stored item totals.
// The grand total is derived from the unrounded subtotal*1.05 plus
// shipping and rounded once, so it stays the canonical figure even
// when the displayed tax line rounds differently.
func Totals(items []domain.CartItem, method domain.DeliveryMethod) domain.OrderTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(decimal.NewFromInt(item.TotalPrice))
	}

	shipping := decimal.Zero
	if method == domain.DeliveryDelivery {
		shipping = deliveryFee
	}

	tax := subtotal.Mul(taxRate)
	grand := subtotal.Add(tax).Add(shipping).Round(2)

	return domain.OrderTotals{
		Subtotal:    subtotal,
		Tax:         tax.Round(2),
		ShippingFee: shipping,
		GrandTotal:  grand,
	}
}
