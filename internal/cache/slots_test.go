package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *SlotCache {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewSlotCache(rdb, 30*time.Second)
}

func TestSlotCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, ok := c.Get(context.Background(), uuid.New(), uuid.New(), "2024-06-05")
	assert.False(t, ok)
}

func TestSlotCacheSetGet(t *testing.T) {
	c := newTestCache(t)
	businessID, serviceID := uuid.New(), uuid.New()
	slots := []string{"09:00", "09:30", "10:00"}

	c.Set(context.Background(), businessID, serviceID, "2024-06-05", slots)

	got, ok := c.Get(context.Background(), businessID, serviceID, "2024-06-05")
	require.True(t, ok)
	assert.Equal(t, slots, got)

	// outra data não vaza
	_, ok = c.Get(context.Background(), businessID, serviceID, "2024-06-06")
	assert.False(t, ok)
}

func TestSlotCacheInvalidateBusiness(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	businessID := uuid.New()
	otherID := uuid.New()
	serviceID := uuid.New()

	c.Set(ctx, businessID, serviceID, "2024-06-05", []string{"09:00"})
	c.Set(ctx, businessID, serviceID, "2024-06-06", []string{"10:00"})
	c.Set(ctx, otherID, serviceID, "2024-06-05", []string{"11:00"})

	c.InvalidateBusiness(ctx, businessID)

	_, ok := c.Get(ctx, businessID, serviceID, "2024-06-05")
	assert.False(t, ok)
	_, ok = c.Get(ctx, businessID, serviceID, "2024-06-06")
	assert.False(t, ok)

	// o cache de outro negócio fica de pé
	got, ok := c.Get(ctx, otherID, serviceID, "2024-06-05")
	require.True(t, ok)
	assert.Equal(t, []string{"11:00"}, got)
}
