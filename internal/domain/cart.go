package domain

import "time"

// CartItem is a frozen configuration plus the price computed at the
// time it was added. TotalPrice is never recomputed from the catalog.
type CartItem struct {
	ID         string      `json:"id"`
	Product    Product     `json:"product"`
	Config     PrintConfig `json:"config"`
	TotalPrice int64       `json:"total_price"`
	UploadID   string      `json:"upload_id,omitempty"`
	AddedAt    time.Time   `json:"added_at"`
}

// Cart is the ordered collection of items for one session.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Total sums the stored item totals, in whole AED.
func (c Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.TotalPrice
	}
	return total
}

// CheckoutStatus tracks where a session sits in the checkout flow.
type CheckoutStatus string

const (
	StatusBrowsing  CheckoutStatus = "BROWSING"
	StatusHasItems  CheckoutStatus = "HAS_ITEMS"
	StatusSubmitted CheckoutStatus = "SUBMITTED"
)

func (s CheckoutStatus) String() string {
	return string(s)
}
