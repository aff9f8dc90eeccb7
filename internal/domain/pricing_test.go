package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteSubtotal(t *testing.T) {
	tests := []struct {
		name             string
		subtotal         int64
		expectedShipping int64
		expectedTotal    int64
	}{
		{
			name:             "empty cart still charges flat fee",
			subtotal:         0,
			expectedShipping: 1500,
			expectedTotal:    1500,
		},
		{
			name:             "under threshold pays flat fee",
			subtotal:         18999,
			expectedShipping: 1500,
			expectedTotal:    20499,
		},
		{
			name:             "exactly at threshold still pays",
			subtotal:         20000,
			expectedShipping: 1500,
			expectedTotal:    21500,
		},
		{
			name:             "one cent over threshold ships free",
			subtotal:         20001,
			expectedShipping: 0,
			expectedTotal:    20001,
		},
		{
			name:             "well over threshold ships free",
			subtotal:         43998,
			expectedShipping: 0,
			expectedTotal:    43998,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuoteSubtotal(tt.subtotal)
			assert.Equal(t, tt.subtotal, q.Subtotal)
			assert.Equal(t, tt.expectedShipping, q.Shipping)
			assert.Equal(t, tt.expectedTotal, q.Total)
		})
	}
}

func TestQuoteSubtotal_Deterministic(t *testing.T) {
	a := QuoteSubtotal(12345)
	b := QuoteSubtotal(12345)
	assert.Equal(t, a, b)
}

func TestFreeShippingDelta(t *testing.T) {
	assert.Equal(t, int64(20001), FreeShippingDelta(0))
	assert.Equal(t, int64(1), FreeShippingDelta(20000))
	assert.Equal(t, int64(0), FreeShippingDelta(20001))
	assert.Equal(t, int64(0), FreeShippingDelta(50000))
}
