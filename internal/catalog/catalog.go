// Package catalog holds the static product reference data for the
// storefront. Products are compiled in and never mutated at runtime.
package catalog

import (
	"errors"

	"github.com/adprintpro/storefront/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

var products = []domain.Product{
	{
		ID:          "p1",
		Name:        "Luxury Business Cards",
		Description: "Thick, premium texture cards that make a lasting impression.",
		ImageURL:    "https://picsum.photos/400/300?random=1",
		BasePrice:   50,
		Category:    domain.CategoryBusiness,
	},
	{
		ID:          "p2",
		Name:        "Marketing Flyers",
		Description: "Glossy or matte vibrant flyers for events and promotions.",
		ImageURL:    "https://picsum.photos/400/300?random=2",
		BasePrice:   150,
		Category:    domain.CategoryMarketing,
	},
	{
		ID:          "p3",
		Name:        "Roll-up Banners",
		Description: "Durable, portable stands perfect for exhibitions and retail.",
		ImageURL:    "https://picsum.photos/400/300?random=3",
		BasePrice:   200,
		Category:    domain.CategoryLargeFormat,
	},
	{
		ID:          "p4",
		Name:        "Corporate Booklets",
		Description: "Professional saddle-stitched or perfect bound booklets.",
		ImageURL:    "https://picsum.photos/400/300?random=4",
		BasePrice:   300,
		Category:    domain.CategoryBusiness,
	},
}

// All returns every catalog product in display order. The returned
// slice is a copy so callers cannot mutate the catalog.
func All() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// Get looks up a product by ID.
func Get(id string) (domain.Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// GetOrDefault resolves a product ID for the configurator, silently
// substituting the first catalog entry for an unknown ID. This keeps
// the configurator usable from stale links rather than dead-ending.
func GetOrDefault(id string) domain.Product {
	p, err := Get(id)
	if err != nil {
		return products[0]
	}
	return p
}
