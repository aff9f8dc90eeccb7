package domain

// Shipping pricing constants, in cents.
const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	// The comparison is strict: a subtotal of exactly 20000 still pays shipping.
	FreeShippingThreshold int64 = 20000

	// FlatShippingFee is charged on every order at or under the threshold.
	FlatShippingFee int64 = 1500
)

// Quote is the derived price breakdown for a cart or order. All amounts
// are in cents.
type Quote struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

// QuoteSubtotal derives shipping and total from a subtotal. Pure function;
// the same subtotal always yields the same quote.
func QuoteSubtotal(subtotal int64) Quote {
	var shipping int64
	if subtotal <= FreeShippingThreshold {
		shipping = FlatShippingFee
	}
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}

// FreeShippingDelta returns how many more cents of merchandise the cart
// needs before shipping becomes free. Zero when the cart already qualifies.
func FreeShippingDelta(subtotal int64) int64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return FreeShippingThreshold - subtotal + 1
}
