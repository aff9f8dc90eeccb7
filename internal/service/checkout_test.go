package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/indrajewels/storefront/pkg/errors"
	"github.com/indrajewels/storefront/pkg/validator"

	"github.com/indrajewels/storefront/internal/domain"
	"github.com/indrajewels/storefront/internal/repository/memory"
)

func validForm() domain.CheckoutForm {
	return domain.CheckoutForm{
		FirstName: "Ava",
		LastName:  "Stone",
		Email:     "ava@example.com",
		Address:   "12 Gem Street",
		City:      "Portland",
		ZipCode:   "97201",
	}
}

type checkoutFixture struct {
	carts    *memory.CartRepository
	orders   *memory.OrderRepository
	checkout *CheckoutService
	cart     *CartService
}

func newCheckoutFixture(t *testing.T, delay time.Duration) *checkoutFixture {
	t.Helper()
	carts := memory.NewCartRepository()
	orders := memory.NewOrderRepository(memory.SeedOrders())
	products := memory.NewProductRepository(memory.SeedCatalog())
	return &checkoutFixture{
		carts:    carts,
		orders:   orders,
		checkout: NewCheckoutService(carts, orders, testLogger(), delay),
		cart:     NewCartService(carts, products, testLogger(), 0),
	}
}

func TestCheckoutService_PlaceOrder_Success(t *testing.T) {
	f := newCheckoutFixture(t, 0)
	ctx := context.Background()

	// Two pendants and a ring: 2*24999 + 19999 = 69997, free shipping.
	_, err := f.cart.AddItem(ctx, "sess-1", "1", 2)
	require.NoError(t, err)
	_, err = f.cart.AddItem(ctx, "sess-1", "8", 1)
	require.NoError(t, err)

	order, err := f.checkout.PlaceOrder(ctx, "sess-1", validForm())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^INDRA-\d{4}$`), order.Number)
	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
	assert.Equal(t, int64(69997), order.SubtotalAmount)
	assert.Equal(t, int64(0), order.ShippingAmount)
	assert.Equal(t, int64(69997), order.TotalAmount)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "Ava Stone", order.Shipping.FullName)
	assert.WithinDuration(t, time.Now().UTC().Add(5*24*time.Hour), order.EstimatedDelivery, time.Minute)

	// The order is retrievable and the cart is gone.
	saved, err := f.orders.GetByNumber(ctx, order.Number)
	require.NoError(t, err)
	assert.Equal(t, order.TotalAmount, saved.TotalAmount)

	cart, err := f.cart.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCheckoutService_PlaceOrder_ChargesShippingUnderThreshold(t *testing.T) {
	f := newCheckoutFixture(t, 0)
	ctx := context.Background()

	// Pearl Drop Earrings alone: 18999, under the free shipping bar.
	_, err := f.cart.AddItem(ctx, "sess-1", "2", 1)
	require.NoError(t, err)

	order, err := f.checkout.PlaceOrder(ctx, "sess-1", validForm())
	require.NoError(t, err)
	assert.Equal(t, int64(18999), order.SubtotalAmount)
	assert.Equal(t, int64(1500), order.ShippingAmount)
	assert.Equal(t, int64(20499), order.TotalAmount)
}

func TestCheckoutService_PlaceOrder_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t, 0)

	_, err := f.checkout.PlaceOrder(context.Background(), "sess-1", validForm())
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestCheckoutService_PlaceOrder_InvalidForm(t *testing.T) {
	f := newCheckoutFixture(t, 0)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, "sess-1", "1", 1)
	require.NoError(t, err)

	form := validForm()
	form.Email = "not-an-email"
	form.City = "   " // whitespace-only fails required after trim
	_, err = f.checkout.PlaceOrder(ctx, "sess-1", form)

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := verr.Fields()
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "City")

	// Validation failure leaves the cart untouched.
	cart, err := f.cart.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, cart.IsEmpty())
}

func TestCheckoutService_PlaceOrder_OptionalFieldsMayBeEmpty(t *testing.T) {
	f := newCheckoutFixture(t, 0)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, "sess-1", "1", 1)
	require.NoError(t, err)

	form := validForm()
	form.Phone = ""
	form.State = ""
	form.Country = ""

	_, err = f.checkout.PlaceOrder(ctx, "sess-1", form)
	assert.NoError(t, err)
}

func TestCheckoutService_PlaceOrder_ShortDomainEmail(t *testing.T) {
	f := newCheckoutFixture(t, 0)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, "sess-1", "1", 1)
	require.NoError(t, err)

	form := validForm()
	form.Email = "a@b.co"
	_, err = f.checkout.PlaceOrder(ctx, "sess-1", form)
	assert.NoError(t, err)
}

func TestCheckoutService_PlaceOrder_CanceledContext(t *testing.T) {
	f := newCheckoutFixture(t, 5*time.Second)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, "sess-1", "1", 1)
	require.NoError(t, err)

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	_, err = f.checkout.PlaceOrder(canceled, "sess-1", validForm())
	assert.ErrorIs(t, err, context.Canceled)

	// Nothing was placed and the cart survives.
	cart, err := f.cart.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, cart.IsEmpty())
}

func TestCheckoutService_PlaceOrder_SimulatedDelayElapses(t *testing.T) {
	f := newCheckoutFixture(t, 20*time.Millisecond)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, "sess-1", "1", 1)
	require.NoError(t, err)

	start := time.Now()
	_, err = f.checkout.PlaceOrder(ctx, "sess-1", validForm())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
