package memory

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/indrajewels/storefront/pkg/errors"

	"github.com/indrajewels/storefront/internal/domain"
)

// OrderRepository implements repository.OrderRepository with an in-process
// map keyed by order number.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

// NewOrderRepository creates an order repository seeded with the given
// orders. Pass SeedOrders() to include the demo tracking order.
func NewOrderRepository(seed []domain.Order) *OrderRepository {
	orders := make(map[string]*domain.Order, len(seed))
	for i := range seed {
		o := seed[i]
		orders[o.Number] = &o
	}
	return &OrderRepository{orders: orders}
}

// GetByNumber retrieves an order by its order number.
func (r *OrderRepository) GetByNumber(_ context.Context, number string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[number]
	if !ok {
		return nil, apperrors.NotFound("order", number)
	}
	out := *order
	out.Items = make([]domain.OrderItem, len(order.Items))
	copy(out.Items, order.Items)
	return &out, nil
}

// Save persists an order, overwriting any existing order with the same number.
func (r *OrderRepository) Save(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *order
	stored.Items = make([]domain.OrderItem, len(order.Items))
	copy(stored.Items, order.Items)
	r.orders[order.Number] = &stored
	return nil
}

// SeedOrders returns the demo order used for trying out tracking without
// placing a real order. Its shipping email is empty, which the tracking
// service treats as matching any email.
func SeedOrders() []domain.Order {
	placed := time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC)
	return []domain.Order{
		{
			Number: "INDRA-8742",
			Status: domain.OrderStatusProcessing,
			Items: []domain.OrderItem{
				{
					ProductID: "1",
					Name:      "Gold Lunar Pendant",
					Price:     24999,
					Quantity:  1,
					ImageURL:  "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?auto=format&fit=crop&w=800&q=80",
				},
				{
					ProductID: "2",
					Name:      "Pearl Drop Earrings",
					Price:     18999,
					Quantity:  1,
					ImageURL:  "https://images.unsplash.com/photo-1582562124811-c09040d0a901?auto=format&fit=crop&w=800&q=80",
				},
			},
			SubtotalAmount: 43998,
			ShippingAmount: 0,
			TotalAmount:    43998,
			Currency:       "USD",
			Shipping: domain.ShippingInfo{
				FullName: "Demo Customer",
				Address:  "123 Main St, Apt 4B",
				City:     "New York",
				State:    "NY",
				ZipCode:  "10001",
				Country:  "US",
			},
			TrackingNumber:    "USPS-1234567890",
			EstimatedDelivery: time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC),
			PlacedAt:          placed,
		},
	}
}
