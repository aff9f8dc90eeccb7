package repository

import (
	"context"

	"github.com/indrajewels/storefront/internal/domain"
)

// CartRepository defines the interface for cart persistence operations.
// Carts are keyed by browser session ID.
type CartRepository interface {
	// Get retrieves a cart by session ID.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)

	// Save persists a cart, overwriting any existing cart for the session.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes a cart by session ID.
	Delete(ctx context.Context, sessionID string) error
}

// ProductRepository defines read access to the product catalog.
type ProductRepository interface {
	// List returns all products in catalog order.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a single product.
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// OrderRepository defines the interface for order persistence operations.
type OrderRepository interface {
	// GetByNumber retrieves an order by its order number.
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)

	// Save persists an order, overwriting any existing order with the
	// same number.
	Save(ctx context.Context, order *domain.Order) error
}
