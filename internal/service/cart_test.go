package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/indrajewels/storefront/pkg/errors"

	"github.com/indrajewels/storefront/internal/domain"
	"github.com/indrajewels/storefront/internal/repository/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func newCartService(t *testing.T) *CartService {
	t.Helper()
	return NewCartService(
		memory.NewCartRepository(),
		memory.NewProductRepository(memory.SeedCatalog()),
		testLogger(),
		24*time.Hour,
	)
}

func TestCartService_GetCart_EmptyWhenAbsent(t *testing.T) {
	svc := newCartService(t)

	cart, err := svc.GetCart(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Subtotal())
}

func TestCartService_AddItem_SnapshotsProduct(t *testing.T) {
	svc := newCartService(t)

	cart, err := svc.AddItem(context.Background(), "sess-1", "1", 1)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	line := cart.Lines[0]
	assert.Equal(t, "Gold Lunar Pendant", line.Name)
	assert.Equal(t, domain.CategoryNecklaces, line.Category)
	assert.Equal(t, int64(24999), line.Price)
	assert.Equal(t, 1, line.Quantity)
}

func TestCartService_AddItem_MergesSameProduct(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", "1", 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "sess-1", "1", 3)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, 5, cart.ItemCount())
}

func TestCartService_AddItem_ClampsQuantity(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	// Below 1 counts as 1.
	cart, err := svc.AddItem(ctx, "sess-1", "2", -5)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	// Capped at the per-line maximum.
	cart, err = svc.AddItem(ctx, "sess-1", "2", 500)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxLineQuantity, cart.Lines[0].Quantity)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	svc := newCartService(t)

	_, err := svc.AddItem(context.Background(), "sess-1", "999", 1)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCartService_AddItem_RequiresSession(t *testing.T) {
	svc := newCartService(t)

	_, err := svc.AddItem(context.Background(), "", "1", 1)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestCartService_UpdateQuantity(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", "1", 1)
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "sess-1", "1", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Lines[0].Quantity)

	// Zero removes the line.
	cart, err = svc.UpdateQuantity(ctx, "sess-1", "1", 0)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_UpdateQuantity_AbsentLineIsNoOp(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", "1", 2)
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "sess-1", "8", 3)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestCartService_RemoveItem(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", "1", 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sess-1", "2", 1)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "sess-1", "1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "2", cart.Lines[0].ProductID)

	// Removing an absent product is a no-op.
	cart, err = svc.RemoveItem(ctx, "sess-1", "1")
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
}

func TestCartService_Clear(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", "1", 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "sess-1"))

	cart, err := svc.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	// Clearing an already-empty cart is fine.
	assert.NoError(t, svc.Clear(ctx, "sess-1"))
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-a", "1", 1)
	require.NoError(t, err)

	cart, err := svc.GetCart(ctx, "sess-b")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_AddRemoveLifecycle(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	// Add one bracelet, then two more of the same: one line, quantity 3.
	_, err := svc.AddItem(ctx, "sess-1", "4", 1)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "sess-1", "4", 2)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)

	// 3 * 29999 = 89997, comfortably over the free shipping bar.
	quote := domain.QuoteSubtotal(cart.Subtotal())
	assert.Equal(t, int64(89997), quote.Subtotal)
	assert.Equal(t, int64(0), quote.Shipping)
	assert.Equal(t, int64(89997), quote.Total)

	// Removing the line empties the cart and the subtotal follows.
	cart, err = svc.RemoveItem(ctx, "sess-1", "4")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Subtotal())
}

func TestCartService_AddItem_SetsExpiry(t *testing.T) {
	svc := newCartService(t)

	cart, err := svc.AddItem(context.Background(), "sess-1", "1", 1)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), cart.ExpiresAt, time.Minute)
}
