package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/indrajewels/storefront/pkg/errors"

	"github.com/indrajewels/storefront/internal/domain"
	"github.com/indrajewels/storefront/internal/repository"
)

// CartService implements the business logic for cart operations. Mutations
// are deliberately permissive: out-of-range quantities are clamped and
// operations on absent lines are no-ops, so a stale page never produces
// an error the shopper has to care about.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	logger   *slog.Logger
	cartTTL  time.Duration
}

// NewCartService creates a new cart service. cartTTL bounds how long an
// idle cart survives; zero means carts never expire.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository, logger *slog.Logger, cartTTL time.Duration) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		logger:   logger,
		cartTTL:  cartTTL,
	}
}

// GetCart retrieves the cart for a session. If no cart exists, returns an
// empty cart without persisting it.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.NewCart(sessionID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// AddItem adds a product to the session's cart, snapshotting the product's
// current name and price onto the line. Adding a product already in the
// cart merges by increasing quantity. Quantities below 1 count as 1, and
// line quantity is capped at domain.MaxLineQuantity.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if i := cart.FindLineIndex(productID); i >= 0 {
		cart.Lines[i].Quantity = clampQuantity(cart.Lines[i].Quantity + quantity)
	} else {
		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Category:  product.Category,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Quantity:  clampQuantity(quantity),
		})
	}

	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
		slog.Int("item_count", cart.ItemCount()),
	)

	return cart, nil
}

// UpdateQuantity sets the quantity of a cart line. A quantity below 1
// removes the line. Updating a product not in the cart is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := cart.FindLineIndex(productID)
	if i < 0 {
		return cart, nil
	}

	if quantity < 1 {
		cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
	} else {
		cart.Lines[i].Quantity = clampQuantity(quantity)
	}

	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// RemoveItem removes a product's line from the cart. Removing a product
// not in the cart is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	return s.UpdateQuantity(ctx, sessionID, productID, 0)
}

// Clear empties the session's cart. Clearing an absent cart is a no-op.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	s.logger.InfoContext(ctx, "cart cleared")
	return nil
}

func (s *CartService) saveCart(ctx context.Context, cart *domain.Cart) error {
	now := time.Now().UTC()
	cart.UpdatedAt = now
	if s.cartTTL > 0 {
		cart.ExpiresAt = now.Add(s.cartTTL)
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func clampQuantity(q int) int {
	if q > domain.MaxLineQuantity {
		return domain.MaxLineQuantity
	}
	return q
}
