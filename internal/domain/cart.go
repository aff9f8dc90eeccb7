package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxLineQuantity caps the quantity of any single cart line.
const MaxLineQuantity = 99

// Cart represents a shopping cart keyed by browser session.
type Cart struct {
	ID        string     `json:"id"`
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
	Currency  string     `json:"currency"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// CartLine is a snapshot of a product at the moment it was added,
// plus the quantity. Price changes in the catalog do not retroactively
// reprice lines already in the cart.
type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"image_url,omitempty"`
	Quantity  int    `json:"quantity"`
}

// NewCart returns an empty cart for the given session.
func NewCart(sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Lines:     []CartLine{},
		Currency:  "USD",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Subtotal calculates the total price of all lines in the cart (in cents).
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// FindLineIndex returns the index of the line matching the given product ID.
// Returns -1 if not found. O(n) search but centralizes the lookup.
func (c *Cart) FindLineIndex(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
