package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/indrajewels/storefront/pkg/errors"

	"github.com/indrajewels/storefront/internal/domain"
)

func setupTestRedis(t *testing.T) (*CartRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := NewCartRepository(client, 24*time.Hour)
	return repo, mr
}

func sampleCart() *domain.Cart {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.Cart{
		SessionID: "sess-001",
		Lines: []domain.CartLine{
			{
				ProductID: "1",
				Name:      "Gold Lunar Pendant",
				Category:  domain.CategoryNecklaces,
				Price:     24999,
				Quantity:  2,
			},
		},
		Currency:  "USD",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCartRepository_Get_Success(t *testing.T) {
	repo, mr := setupTestRedis(t)

	cart := sampleCart()
	data, err := json.Marshal(cart)
	require.NoError(t, err)
	require.NoError(t, mr.Set("cart:sess-001", string(data)))

	got, err := repo.Get(context.Background(), "sess-001")
	require.NoError(t, err)
	assert.Equal(t, cart.SessionID, got.SessionID)
	assert.Len(t, got.Lines, 1)
	assert.Equal(t, int64(24999), got.Lines[0].Price)
}

func TestCartRepository_Get_NotFound(t *testing.T) {
	repo, _ := setupTestRedis(t)

	_, err := repo.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCartRepository_SaveAndGet_RoundTrip(t *testing.T) {
	repo, mr := setupTestRedis(t)

	cart := sampleCart()
	require.NoError(t, repo.Save(context.Background(), cart))

	got, err := repo.Get(context.Background(), cart.SessionID)
	require.NoError(t, err)
	assert.Equal(t, cart.Subtotal(), got.Subtotal())

	// Save applies the configured TTL.
	ttl := mr.TTL("cart:sess-001")
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestCartRepository_Save_RefreshesTTL(t *testing.T) {
	repo, mr := setupTestRedis(t)

	cart := sampleCart()
	require.NoError(t, repo.Save(context.Background(), cart))

	mr.FastForward(12 * time.Hour)
	require.NoError(t, repo.Save(context.Background(), cart))

	assert.Equal(t, 24*time.Hour, mr.TTL("cart:sess-001"))
}

func TestCartRepository_Delete(t *testing.T) {
	repo, _ := setupTestRedis(t)

	cart := sampleCart()
	require.NoError(t, repo.Save(context.Background(), cart))
	require.NoError(t, repo.Delete(context.Background(), cart.SessionID))

	_, err := repo.Get(context.Background(), cart.SessionID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	// Deleting again is a no-op.
	assert.NoError(t, repo.Delete(context.Background(), cart.SessionID))
}

func TestCartRepository_Get_ExpiredCartIsGone(t *testing.T) {
	repo, mr := setupTestRedis(t)

	require.NoError(t, repo.Save(context.Background(), sampleCart()))
	mr.FastForward(25 * time.Hour)

	_, err := repo.Get(context.Background(), "sess-001")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
