package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/indrajewels/storefront/pkg/httputil"
	"github.com/indrajewels/storefront/pkg/validator"

	"github.com/indrajewels/storefront/internal/domain"
	"github.com/indrajewels/storefront/internal/service"
)

// CheckoutHandler handles HTTP requests for the checkout endpoint.
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: svc,
		logger:  logger,
	}
}

// ConfirmationView is the checkout response: the placed order plus the
// flow state the client should move to.
type ConfirmationView struct {
	Order          *domain.Order `json:"order"`
	CheckoutStatus string        `json:"checkout_status"`
}

// PlaceOrder handles POST /api/v1/checkout. The body is the shipping form;
// the cart comes from the session. On success the response carries the
// placed order and the cart is gone.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())

	var form domain.CheckoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), sessionID, form)
	if err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			httputil.WriteValidationError(w, err)
			return
		}
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: ConfirmationView{
		Order:          order,
		CheckoutStatus: domain.CheckoutStatusConfirmed,
	}})
}
