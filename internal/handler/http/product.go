package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/indrajewels/storefront/pkg/errors"
	"github.com/indrajewels/storefront/pkg/httputil"

	"github.com/indrajewels/storefront/internal/service"
)

// ProductHandler handles HTTP requests for catalog endpoints.
type ProductHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /api/v1/products. Supported query parameters:
// category, min_price, max_price (cents), sort (featured|price_asc|price_desc).
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := service.ListFilter{
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
	}

	var err error
	if filter.MinPrice, err = parsePriceParam(q.Get("min_price")); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("min_price must be a non-negative integer"), h.logger)
		return
	}
	if filter.MaxPrice, err = parsePriceParam(q.Get("max_price")); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("max_price must be a non-negative integer"), h.logger)
		return
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products})
}

// Get handles GET /api/v1/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// Related handles GET /api/v1/products/{id}/related
func (h *ProductHandler) Related(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	related, err := h.service.Related(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: related})
}

func parsePriceParam(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0, apperrors.ErrInvalidInput
	}
	return v, nil
}
