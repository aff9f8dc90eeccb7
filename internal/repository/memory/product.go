package memory

import (
	"context"

	apperrors "github.com/indrajewels/storefront/pkg/errors"

	"github.com/indrajewels/storefront/internal/domain"
)

// ProductRepository serves the catalog from an in-memory slice. The
// catalog is fixed at construction; reads never mutate it.
type ProductRepository struct {
	products []domain.Product
	byID     map[string]int
}

// NewProductRepository creates a product repository seeded with the
// given catalog. Pass SeedCatalog() for the standard storefront catalog.
func NewProductRepository(products []domain.Product) *ProductRepository {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &ProductRepository{products: products, byID: byID}
}

// List returns all products in catalog order.
func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a single product.
func (r *ProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("product", id)
	}
	p := r.products[i]
	return &p, nil
}

// SeedCatalog returns the standard jewelry catalog. Prices are in cents.
func SeedCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Gold Lunar Pendant",
			Category:    domain.CategoryNecklaces,
			Price:       24999,
			Currency:    "USD",
			ImageURL:    "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?auto=format&fit=crop&w=800&q=80",
			Description: "A stunning crescent moon pendant crafted in 18k gold with delicate detailing.",
		},
		{
			ID:          "2",
			Name:        "Pearl Drop Earrings",
			Category:    domain.CategoryEarrings,
			Price:       18999,
			Currency:    "USD",
			ImageURL:    "https://images.unsplash.com/photo-1582562124811-c09040d0a901?auto=format&fit=crop&w=800&q=80",
			Description: "Elegant freshwater pearl earrings set in sterling silver, perfect for every occasion.",
		},
		{
			ID:          "3",
			Name:        "Diamond Constellation Ring",
			Category:    domain.CategoryRings,
			Price:       34999,
			Currency:    "USD",
			ImageURL:    "https://images.unsplash.com/photo-1599643477877-530eb83abc8e?auto=format&fit=crop&w=800&q=80",
			Description: "A celestial-inspired ring featuring ethically sourced diamonds set in 14k gold.",
		},
		{
			ID:          "4",
			Name:        "Sapphire Tennis Bracelet",
			Category:    domain.CategoryBracelets,
			Price:       29999,
			Currency:    "USD",
			ImageURL:    "https://images.unsplash.com/photo-1603561596142-501172dded88?auto=format&fit=crop&w=800&q=80",
			Description: "An elegant bracelet featuring a continuous line of blue sapphires in a delicate gold setting.",
		},
		{
			ID:          "5",
			Name:        "Emerald Stud Earrings",
			Category:    domain.CategoryEarrings,
			Price:       27999,
			Currency:    "USD",
			ImageURL:    "https://images.unsplash.com/photo-1586878341524-7c93a915283e?auto=format&fit=crop&w=800&q=80",
			Description: "Classic emerald studs set in 14k gold, perfect for everyday elegance.",
		},
		{
			ID:          "6",
			Name:        "Twisted Gold Bangle",
			Category:    domain.CategoryBracelets,
			Price:       21999,
			Currency:    "USD",
			ImageURL:    "https://images.unsplash.com/photo-1608050072142-ade9265d4cc5?auto=format&fit=crop&w=800&q=80",
			Description: "A modern bangle with a distinctive twisted design in polished 18k gold.",
		},
		{
			ID:          "7",
			Name:        "Opal Statement Necklace",
			Category:    domain.CategoryNecklaces,
			Price:       31999,
			Currency:    "USD",
			ImageURL:    "https://images.unsplash.com/photo-1551836022-aadb801c60e9?auto=format&fit=crop&w=800&q=80",
			Description: "A striking statement necklace featuring Australian opals set in sterling silver.",
		},
		{
			ID:          "8",
			Name:        "Rose Gold Twist Ring",
			Category:    domain.CategoryRings,
			Price:       19999,
			Currency:    "USD",
			ImageURL:    "https://images.unsplash.com/photo-1605100804763-247f67b3557e?auto=format&fit=crop&w=800&q=80",
			Description: "An elegant twisted band in warm rose gold, the perfect everyday ring.",
		},
	}
}
