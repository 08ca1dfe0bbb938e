package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adprintpro/storefront/internal/cart"
	"github.com/adprintpro/storefront/internal/checkout"
	"github.com/adprintpro/storefront/internal/domain"
)

type CheckoutHandler struct {
	svc *checkout.Service
}

func NewCheckoutHandler(svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

type CheckoutSummaryDTO struct {
	Cart           domain.Cart           `json:"cart"`
	Status         domain.CheckoutStatus `json:"status"`
	DeliveryMethod domain.DeliveryMethod `json:"delivery_method"`
	Totals         domain.OrderTotals    `json:"totals"`
}

type PlaceOrderRequestDTO struct {
	CustomerName   string `json:"customer_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	DeliveryMethod string `json:"delivery_method"`
	Address        string `json:"address"`
}

// Summary shows the cart with its totals for a delivery method.
// Viewing checkout with an empty cart is a valid state, not an error.
func (h *CheckoutHandler) Summary(w http.ResponseWriter, r *http.Request) {
	method, err := domain.ParseDeliveryMethod(r.URL.Query().Get("delivery_method"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_delivery_method", err.Error())
		return
	}

	c, status, totals := h.svc.Summary(sessionIDFromContext(r.Context()), method)
	respondJSON(w, http.StatusOK, CheckoutSummaryDTO{
		Cart:           c,
		Status:         status,
		DeliveryMethod: method,
		Totals:         totals,
	})
}

// PlaceOrder submits the order intent. Rejections (validation failure,
// empty cart) leave the cart untouched.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	method, err := domain.ParseDeliveryMethod(req.DeliveryMethod)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_delivery_method", err.Error())
		return
	}

	details := domain.OrderDetails{
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Email:          req.Email,
		DeliveryMethod: method,
		Address:        req.Address,
	}

	confirmation, err := h.svc.PlaceOrder(r.Context(), sessionIDFromContext(r.Context()), details)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusBadRequest, "validation_failed", err.Error())
		case errors.Is(err, cart.ErrEmptyCart):
			respondError(w, http.StatusConflict, "empty_cart", "cannot place an order with an empty cart")
		default:
			respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, confirmation)
}
