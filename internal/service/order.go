package service

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/indrajewels/storefront/pkg/errors"

	"github.com/indrajewels/storefront/internal/domain"
	"github.com/indrajewels/storefront/internal/repository"
)

// OrderService answers order tracking lookups.
type OrderService struct {
	orders repository.OrderRepository
	logger *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository, logger *slog.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

// Track looks up an order by number and verifies the requester knows the
// email it was placed with. The match is case-insensitive. Orders stored
// with an empty email (the seeded demo order) match any email. A wrong
// email reports not found rather than revealing the order exists.
func (s *OrderService) Track(ctx context.Context, number, email string) (*domain.Order, error) {
	number = strings.TrimSpace(number)
	email = strings.TrimSpace(email)

	if number == "" {
		return nil, apperrors.InvalidInput("order number is required")
	}
	if email == "" {
		return nil, apperrors.InvalidInput("email is required")
	}

	order, err := s.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if order.Shipping.Email != "" && !strings.EqualFold(order.Shipping.Email, email) {
		return nil, apperrors.NotFound("order", number)
	}

	return order, nil
}
