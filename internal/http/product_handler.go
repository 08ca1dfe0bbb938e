package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adprintpro/storefront/internal/catalog"
	"github.com/adprintpro/storefront/internal/domain"
	"github.com/adprintpro/storefront/internal/pricing"
)

type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

type QuoteRequestDTO struct {
	Config domain.PrintConfig `json:"config"`
}

type QuoteResponseDTO struct {
	ProductID string `json:"product_id"`
	BasePrice int64  `json:"base_price"`
	UnitPrice int64  `json:"unit_price"`
	Currency  string `json:"currency"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.All())
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "product_id")
	product, err := catalog.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Options(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.ConfiguratorOptions())
}

// Quote returns a live price estimate for an in-progress
// configuration. An unknown product ID falls back to the first catalog
// entry, matching the configurator's stale-link behavior.
func (h *ProductHandler) Quote(w http.ResponseWriter, r *http.Request) {
	product := catalog.GetOrDefault(chi.URLParam(r, "product_id"))

	var req QuoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if code, msg := validateConfig(req.Config); code != "" {
		respondError(w, http.StatusBadRequest, code, msg)
		return
	}

	respondJSON(w, http.StatusOK, QuoteResponseDTO{
		ProductID: product.ID,
		BasePrice: product.BasePrice,
		UnitPrice: pricing.UnitEstimate(product.BasePrice, req.Config),
		Currency:  "AED",
	})
}

// validateConfig checks a configuration against the offered options.
// It returns an empty code when the configuration is valid.
func validateConfig(cfg domain.PrintConfig) (code, message string) {
	if cfg.Quantity <= 0 {
		return "invalid_quantity", "quantity must be positive"
	}
	if cfg.Quantity > pricing.MaxQuantity {
		return "invalid_quantity", "quantity exceeds the maximum order size"
	}
	if !catalog.ValidPaperType(cfg.PaperType) {
		return "invalid_paper_type", "paper type is not offered"
	}
	if !catalog.ValidSize(cfg.Size) {
		return "invalid_size", "size is not offered"
	}
	if !catalog.ValidFinish(cfg.Finish) {
		return "invalid_finish", "finish is not offered"
	}
	return "", ""
}
