package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/indrajewels/storefront/pkg/httputil"
	"github.com/indrajewels/storefront/pkg/validator"

	"github.com/indrajewels/storefront/internal/domain"
	"github.com/indrajewels/storefront/internal/service"
)

// OrderHandler handles HTTP requests for order tracking.
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order HTTP handler.
func NewOrderHandler(svc *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: svc,
		logger:  logger,
	}
}

// TrackRequest is the JSON request body for tracking an order.
type TrackRequest struct {
	OrderNumber string `json:"order_number" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}

// TrackView is the tracking response: the order plus its position in the
// delivery progression.
type TrackView struct {
	Order    *domain.Order `json:"order"`
	Step     int           `json:"step"`
	Statuses []string      `json:"statuses"`
}

// Track handles POST /api/v1/orders/track. Lookup is by order number and
// the email the order was placed with, so tracking works without a cart
// or session.
func (h *OrderHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req TrackRequest
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

	order, err := h.service.Track(r.Context(), req.OrderNumber, req.Email)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: TrackView{
		Order:    order,
		Step:     order.StatusStep(),
		Statuses: domain.ValidStatuses(),
	}})
}
