package service

import (
	"context"
	"testing"

	"coffee-backend/internal/core/cache"
	"coffee-backend/internal/features/loyalty/adapters"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *LoyaltyService {
	t.Helper()
	mr := miniredis.RunT(t)

	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return NewLoyaltyService(adapters.NewRedisUserRepository(c))
}

func TestLoyaltyService_Status(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// First touch creates the default record.
	user, err := svc.Status(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, "user-a", user.UserID)
	assert.Equal(t, 0, user.Points)
	assert.True(t, user.IsMember)
	assert.Empty(t, user.LastOrderID)

	// Second read returns the stored record, not a fresh one.
	_, err = svc.AddPoints(ctx, "user-a", 30)
	require.NoError(t, err)
	user, err = svc.Status(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 30, user.Points)
}

func TestLoyaltyService_AddPoints(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.AddPoints(ctx, "user-a", 50)
	require.NoError(t, err)
	assert.Equal(t, 50, user.Points)

	user, err = svc.AddPoints(ctx, "user-a", 25)
	require.NoError(t, err)
	assert.Equal(t, 75, user.Points)

	// Negative amounts never shrink the balance.
	user, err = svc.AddPoints(ctx, "user-a", -100)
	require.NoError(t, err)
	assert.Equal(t, 75, user.Points)
}

func TestLoyaltyService_AwardForPayment(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// $7.15 awards 7 whole dollars worth of points.
	user, err := svc.AwardForPayment(ctx, "user-a", 715)
	require.NoError(t, err)
	assert.Equal(t, 70, user.Points)

	// Sub-dollar totals award nothing.
	user, err = svc.AwardForPayment(ctx, "user-a", 99)
	require.NoError(t, err)
	assert.Equal(t, 70, user.Points)
}

func TestLoyaltyService_LastOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	last, err := svc.LastOrderID(ctx, "user-a")
	require.NoError(t, err)
	assert.Empty(t, last)

	require.NoError(t, svc.RecordOrder(ctx, "user-a", "ord_1"))
	require.NoError(t, svc.RecordOrder(ctx, "user-a", "ord_2"))

	last, err = svc.LastOrderID(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, "ord_2", last)

	// Recording the order does not disturb the points balance.
	user, err := svc.Status(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 0, user.Points)
	assert.Equal(t, "ord_2", user.LastOrderID)
}
