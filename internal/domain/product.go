package domain

// Category groups catalog products for the storefront navigation.
type Category string

const (
	CategoryBusiness    Category = "Business"
	CategoryMarketing   Category = "Marketing"
	CategoryLargeFormat Category = "Large Format"
)

// Product is an immutable catalog entry. BasePrice is in whole AED.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	BasePrice   int64    `json:"base_price"`
	Category    Category `json:"category"`
}
