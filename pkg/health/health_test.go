package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, h http.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	h(rec, req)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestLivenessHandler_AlwaysReturns200(t *testing.T) {
	h := NewHandler()
	rec, resp := doRequest(t, h.LivenessHandler())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusUp, resp.Status)
	assert.NotZero(t, resp.Timestamp)
}

func TestReadinessHandler_AllHealthy(t *testing.T) {
	h := NewHandler()
	h.Register("cart-store", func(ctx context.Context) error { return nil })
	h.Register("catalog", func(ctx context.Context) error { return nil })

	rec, resp := doRequest(t, h.ReadinessHandler())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusUp, resp.Status)
	assert.Len(t, resp.Checks, 2)
	assert.Equal(t, StatusUp, resp.Checks["cart-store"].Status)
}

func TestReadinessHandler_OneDown(t *testing.T) {
	h := NewHandler()
	h.Register("cart-store", func(ctx context.Context) error { return fmt.Errorf("redis: connection refused") })
	h.Register("catalog", func(ctx context.Context) error { return nil })

	rec, resp := doRequest(t, h.ReadinessHandler())

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, StatusDown, resp.Status)
	assert.Equal(t, StatusDown, resp.Checks["cart-store"].Status)
	assert.Contains(t, resp.Checks["cart-store"].Error, "connection refused")
	assert.Equal(t, StatusUp, resp.Checks["catalog"].Status)
}

func TestReadinessHandler_NoCheckers(t *testing.T) {
	h := NewHandler()
	rec, resp := doRequest(t, h.ReadinessHandler())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusUp, resp.Status)
	assert.Empty(t, resp.Checks)
}

func TestRegister_Overwrite(t *testing.T) {
	h := NewHandler()
	h.Register("store", func(ctx context.Context) error { return fmt.Errorf("old") })
	h.Register("store", func(ctx context.Context) error { return nil })

	rec, resp := doRequest(t, h.ReadinessHandler())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusUp, resp.Checks["store"].Status)
}
