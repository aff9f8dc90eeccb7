package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/indrajewels/storefront/pkg/errors"

	"github.com/indrajewels/storefront/internal/domain"
	"github.com/indrajewels/storefront/internal/repository/memory"
)

func newOrderService(t *testing.T) (*OrderService, *memory.OrderRepository) {
	t.Helper()
	repo := memory.NewOrderRepository(memory.SeedOrders())
	return NewOrderService(repo, testLogger()), repo
}

func TestOrderService_Track_DemoOrderMatchesAnyEmail(t *testing.T) {
	svc, _ := newOrderService(t)

	order, err := svc.Track(context.Background(), "INDRA-8742", "whoever@example.com")
	require.NoError(t, err)
	assert.Equal(t, "INDRA-8742", order.Number)
	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
	assert.Equal(t, "USPS-1234567890", order.TrackingNumber)
}

func TestOrderService_Track_RequiresBothInputs(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	_, err := svc.Track(ctx, "", "a@example.com")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	_, err = svc.Track(ctx, "INDRA-8742", "  ")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestOrderService_Track_UnknownOrder(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.Track(context.Background(), "INDRA-0000", "a@example.com")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestOrderService_Track_EmailMustMatch(t *testing.T) {
	svc, repo := newOrderService(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Order{
		Number:   "INDRA-5555",
		Status:   domain.OrderStatusShipped,
		Shipping: domain.ShippingInfo{Email: "ava@example.com"},
		PlacedAt: time.Now().UTC(),
	}))

	// Case-insensitive match succeeds.
	order, err := svc.Track(ctx, "INDRA-5555", "AVA@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "INDRA-5555", order.Number)

	// A wrong email looks identical to a missing order.
	_, err = svc.Track(ctx, "INDRA-5555", "other@example.com")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestOrderService_Track_TrimsInputs(t *testing.T) {
	svc, _ := newOrderService(t)

	order, err := svc.Track(context.Background(), "  INDRA-8742 ", " demo@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "INDRA-8742", order.Number)
}
