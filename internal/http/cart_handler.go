package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adprintpro/storefront/internal/cart"
	"github.com/adprintpro/storefront/internal/catalog"
	"github.com/adprintpro/storefront/internal/domain"
	"github.com/adprintpro/storefront/internal/pricing"
	"github.com/adprintpro/storefront/internal/uploads"
)

type CartHandler struct {
	carts   cart.Store
	uploads *uploads.MemoryStore
}

func NewCartHandler(carts cart.Store, uploads *uploads.MemoryStore) *CartHandler {
	return &CartHandler{carts: carts, uploads: uploads}
}

type AddItemRequestDTO struct {
	ProductID string             `json:"product_id"`
	Config    domain.PrintConfig `json:"config"`
	UploadID  string             `json:"upload_id,omitempty"`
}

type CartResponseDTO struct {
	Cart   domain.Cart           `json:"cart"`
	Total  int64                 `json:"total"`
	Status domain.CheckoutStatus `json:"status"`
}

type AddItemResponseDTO struct {
	Item domain.CartItem `json:"item"`
	CartResponseDTO
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	c, status := h.carts.Get(sessionIDFromContext(r.Context()))
	respondJSON(w, http.StatusOK, CartResponseDTO{Cart: c, Total: c.Total(), Status: status})
}

// AddItem confirms a configuration into the cart. The price is always
// computed server-side from the catalog base price, never taken from
// the request.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if code, msg := validateConfig(req.Config); code != "" {
		respondError(w, http.StatusBadRequest, code, msg)
		return
	}

	if req.UploadID != "" {
		if _, err := h.uploads.Get(req.UploadID); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_upload", "upload not found")
			return
		}
	}

	product := catalog.GetOrDefault(req.ProductID)
	totalPrice := pricing.UnitEstimate(product.BasePrice, req.Config)

	item := h.carts.AddItem(sessionID, product, req.Config, totalPrice, req.UploadID)

	c, status := h.carts.Get(sessionID)
	respondJSON(w, http.StatusCreated, AddItemResponseDTO{
		Item:            item,
		CartResponseDTO: CartResponseDTO{Cart: c, Total: c.Total(), Status: status},
	})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	itemID := chi.URLParam(r, "item_id")

	if err := h.carts.RemoveItem(sessionID, itemID); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "cart item not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	c, status := h.carts.Get(sessionID)
	respondJSON(w, http.StatusOK, CartResponseDTO{Cart: c, Total: c.Total(), Status: status})
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	h.carts.Clear(sessionID)

	c, status := h.carts.Get(sessionID)
	respondJSON(w, http.StatusOK, CartResponseDTO{Cart: c, Total: c.Total(), Status: status})
}
