package memory

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/indrajewels/storefront/pkg/errors"

	"github.com/indrajewels/storefront/internal/domain"
)

// CartRepository implements repository.CartRepository with an in-process
// map. This is the default cart store; carts vanish on restart.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewCartRepository creates an empty in-memory cart repository.
func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*domain.Cart)}
}

// Get retrieves a cart by session ID. Expired carts are treated as absent.
func (r *CartRepository) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	r.mu.RLock()
	cart, ok := r.carts[sessionID]
	r.mu.RUnlock()

	if !ok {
		return nil, apperrors.NotFound("cart", sessionID)
	}
	if !cart.ExpiresAt.IsZero() && time.Now().UTC().After(cart.ExpiresAt) {
		r.mu.Lock()
		delete(r.carts, sessionID)
		r.mu.Unlock()
		return nil, apperrors.NotFound("cart", sessionID)
	}

	return copyCart(cart), nil
}

// Save persists a cart, overwriting any existing cart for the session.
func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.SessionID] = copyCart(cart)
	return nil
}

// Delete removes a cart by session ID. Deleting an absent cart is a no-op.
func (r *CartRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}

// copyCart returns a deep copy so callers cannot mutate stored state.
func copyCart(c *domain.Cart) *domain.Cart {
	out := *c
	out.Lines = make([]domain.CartLine, len(c.Lines))
	copy(out.Lines, c.Lines)
	return &out
}
