package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/indrajewels/storefront/pkg/httputil"
	"github.com/indrajewels/storefront/pkg/validator"

	"github.com/indrajewels/storefront/internal/domain"
	"github.com/indrajewels/storefront/internal/service"
)

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger,
	}
}

// AddItemRequest is the JSON request body for adding an item to the cart.
// Quantity defaults to 1 when omitted.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest is the JSON request body for updating a line's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartView is the cart response payload: the cart plus its derived price
// breakdown, recomputed on every read.
type CartView struct {
	SessionID         string            `json:"session_id"`
	Lines             []domain.CartLine `json:"lines"`
	Currency          string            `json:"currency"`
	ItemCount         int               `json:"item_count"`
	Subtotal          int64             `json:"subtotal"`
	Shipping          int64             `json:"shipping"`
	Total             int64             `json:"total"`
	FreeShippingDelta int64             `json:"free_shipping_delta"`
}

// NewCartView derives the response payload from a cart.
func NewCartView(cart *domain.Cart) CartView {
	quote := domain.QuoteSubtotal(cart.Subtotal())
	return CartView{
		SessionID:         cart.SessionID,
		Lines:             cart.Lines,
		Currency:          cart.Currency,
		ItemCount:         cart.ItemCount(),
		Subtotal:          quote.Subtotal,
		Shipping:          quote.Shipping,
		Total:             quote.Total,
		FreeShippingDelta: domain.FreeShippingDelta(quote.Subtotal),
	}
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())

	cart, err := h.service.GetCart(r.Context(), sessionID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: NewCartView(cart)})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.service.AddItem(r.Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: NewCartView(cart)})
}

// UpdateQuantity handles PUT /api/v1/cart/items/{productId}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	cart, err := h.service.UpdateQuantity(r.Context(), sessionID, productID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: NewCartView(cart)})
}

// RemoveItem handles DELETE /api/v1/cart/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	cart, err := h.service.RemoveItem(r.Context(), sessionID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: NewCartView(cart)})
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())

	if err := h.service.Clear(r.Context(), sessionID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"status": "cleared"}})
}
