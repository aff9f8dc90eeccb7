package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	apperrors "github.com/indrajewels/storefront/pkg/errors"
	"github.com/indrajewels/storefront/pkg/validator"

	"github.com/indrajewels/storefront/internal/domain"
	"github.com/indrajewels/storefront/internal/repository"
)

// orderNumberAttempts bounds retries when a generated order number collides.
const orderNumberAttempts = 5

// deliveryWindow is added to the placement time for the delivery estimate.
const deliveryWindow = 5 * 24 * time.Hour

// CheckoutService turns a cart plus a shipping form into a placed order.
type CheckoutService struct {
	carts  repository.CartRepository
	orders repository.OrderRepository
	logger *slog.Logger
	delay  time.Duration
}

// NewCheckoutService creates a new checkout service. delay simulates
// payment processing time; zero disables it.
func NewCheckoutService(carts repository.CartRepository, orders repository.OrderRepository, logger *slog.Logger, delay time.Duration) *CheckoutService {
	return &CheckoutService{
		carts:  carts,
		orders: orders,
		logger: logger,
		delay:  delay,
	}
}

// PlaceOrder validates the form, freezes the cart into an order, persists
// it, and clears the cart. The cart must be non-empty. The order number
// has the form INDRA-NNNN.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, form domain.CheckoutForm) (*domain.Order, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	form.Normalize()
	if err := validator.Validate(form); err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Conflict("cart is empty")
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if cart.IsEmpty() {
		return nil, apperrors.Conflict("cart is empty")
	}

	// Simulated payment processing. Honors cancellation so a dropped
	// request never leaves a half-placed order.
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	number, err := s.freshOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	quote := domain.QuoteSubtotal(cart.Subtotal())
	now := time.Now().UTC()

	items := make([]domain.OrderItem, len(cart.Lines))
	for i, line := range cart.Lines {
		items[i] = domain.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			ImageURL:  line.ImageURL,
		}
	}

	order := &domain.Order{
		Number:         number,
		Status:         domain.OrderStatusProcessing,
		Items:          items,
		SubtotalAmount: quote.Subtotal,
		ShippingAmount: quote.Shipping,
		TotalAmount:    quote.Total,
		Currency:       cart.Currency,
		Shipping: domain.ShippingInfo{
			FullName: form.FullName(),
			Email:    form.Email,
			Phone:    form.Phone,
			Address:  form.Address,
			City:     form.City,
			State:    form.State,
			ZipCode:  form.ZipCode,
			Country:  form.Country,
		},
		EstimatedDelivery: now.Add(deliveryWindow),
		PlacedAt:          now,
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		// The order is already placed; a stale cart is an annoyance,
		// not a failure.
		s.logger.WarnContext(ctx, "failed to clear cart after checkout",
			slog.String("order_number", order.Number),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_number", order.Number),
		slog.Int("items", len(order.Items)),
		slog.Int64("total_amount", order.TotalAmount),
	)

	return order, nil
}

// freshOrderNumber generates an INDRA-NNNN number not already in use.
func (s *CheckoutService) freshOrderNumber(ctx context.Context) (string, error) {
	for range orderNumberAttempts {
		number := fmt.Sprintf("INDRA-%04d", 1000+rand.IntN(9000))
		_, err := s.orders.GetByNumber(ctx, number)
		if errors.Is(err, apperrors.ErrNotFound) {
			return number, nil
		}
		if err != nil {
			return "", fmt.Errorf("check order number: %w", err)
		}
	}
	return "", apperrors.Internal(errors.New("could not allocate an order number"))
}
