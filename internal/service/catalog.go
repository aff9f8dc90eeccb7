package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	apperrors "github.com/indrajewels/storefront/pkg/errors"

	"github.com/indrajewels/storefront/internal/domain"
	"github.com/indrajewels/storefront/internal/repository"
)

// Sort order constants for catalog listings.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// ListFilter narrows and orders a catalog listing. Zero values mean
// "no constraint": empty category matches everything, zero MaxPrice means
// unbounded. Prices are in cents.
type ListFilter struct {
	Category string
	MinPrice int64
	MaxPrice int64
	Sort     string
}

// RelatedLimit is how many related products accompany a product detail.
const RelatedLimit = 3

// CatalogService serves product listings and lookups.
type CatalogService struct {
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(products repository.ProductRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{products: products, logger: logger}
}

// List returns products matching the filter, ordered per filter.Sort.
// Featured (and unknown) sort keeps catalog order.
func (s *CatalogService) List(ctx context.Context, filter ListFilter) ([]domain.Product, error) {
	if filter.Category != "" && !domain.IsValidCategory(filter.Category) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown category %q", filter.Category))
	}

	all, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if p.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch filter.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}

	return out, nil
}

// Get retrieves a single product by ID.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	return s.products.GetByID(ctx, id)
}

// Related returns up to RelatedLimit other products in the same category
// as the given product, in catalog order.
func (s *CatalogService) Related(ctx context.Context, id string) ([]domain.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	all, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	related := make([]domain.Product, 0, RelatedLimit)
	for _, p := range all {
		if p.ID == product.ID || p.Category != product.Category {
			continue
		}
		related = append(related, p)
		if len(related) == RelatedLimit {
			break
		}
	}

	return related, nil
}
