package catalog

import "github.com/adprintpro/storefront/internal/domain"

// Options enumerates the print choices the configurator offers. Every
// product currently shares the same option set.
type Options struct {
	PaperTypes       []string `json:"paper_types"`
	Sizes            []string `json:"sizes"`
	QuantityPresets  []int    `json:"quantity_presets"`
	Finishes         []string `json:"finishes"`
	DefaultPaperType string   `json:"default_paper_type"`
	DefaultSize      string   `json:"default_size"`
	DefaultQuantity  int      `json:"default_quantity"`
	DefaultFinish    string   `json:"default_finish"`
}

var configuratorOptions = Options{
	PaperTypes:       []string{"Standard Matte", "Premium Glossy", "Recycled Kraft", "Textured Linen"},
	Sizes:            []string{"Standard (9x5cm)", "Square (6x6cm)", "Slim (8x4cm)"},
	QuantityPresets:  []int{100, 250, 500, 1000},
	Finishes:         []string{domain.FinishNone, "Matte Lamination", "Gloss Lamination", "Gold Foil"},
	DefaultPaperType: "Standard Matte",
	DefaultSize:      "Standard (9x5cm)",
	DefaultQuantity:  100,
	DefaultFinish:    domain.FinishNone,
}

// ConfiguratorOptions returns the option set for the configurator.
func ConfiguratorOptions() Options {
	return configuratorOptions
}

// DefaultConfig is the configuration the configurator starts from.
func DefaultConfig() domain.PrintConfig {
	return domain.PrintConfig{
		PaperType: configuratorOptions.DefaultPaperType,
		Size:      configuratorOptions.DefaultSize,
		Quantity:  configuratorOptions.DefaultQuantity,
		Finish:    configuratorOptions.DefaultFinish,
	}
}

// ValidPaperType reports whether the paper type is one of the offered
// choices.
func ValidPaperType(s string) bool {
	return contains(configuratorOptions.PaperTypes, s)
}

// ValidSize reports whether the size is one of the offered choices.
func ValidSize(s string) bool {
	return contains(configuratorOptions.Sizes, s)
}

// ValidFinish reports whether the finish is one of the offered choices.
func ValidFinish(s string) bool {
	return contains(configuratorOptions.Finishes, s)
}

func contains(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}
