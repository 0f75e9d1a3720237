package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// SlotCache guarda respostas de consulta de slots por pouco tempo.
// Lista de slots pode ficar obsoleta em segundos de qualquer forma
// (o commit sempre revalida), então o TTL curto é suficiente.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCache(rdb *redis.Client, ttl time.Duration) *SlotCache {
	return &SlotCache{rdb: rdb, ttl: ttl}
}

func slotKey(businessID, serviceID uuid.UUID, date string) string {
	return fmt.Sprintf("slots:%s:%s:%s", businessID, serviceID, date)
}

func (c *SlotCache) Get(
	ctx context.Context,
	businessID uuid.UUID,
	serviceID uuid.UUID,
	date string,
) ([]string, bool) {

	raw, err := c.rdb.Get(ctx, slotKey(businessID, serviceID, date)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *SlotCache) Set(
	ctx context.Context,
	businessID uuid.UUID,
	serviceID uuid.UUID,
	date string,
	slots []string,
) {

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, slotKey(businessID, serviceID, date), raw, c.ttl).Err(); err != nil {
		log.Println("slot cache set error:", err)
	}
}

// InvalidateBusiness derruba todas as entradas do negócio após qualquer
// escrita que mude a agenda (booking, status, ausência, expediente).
func (c *SlotCache) InvalidateBusiness(ctx context.Context, businessID uuid.UUID) {
	pattern := fmt.Sprintf("slots:%s:*", businessID)

	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Println("slot cache invalidate error:", err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Println("slot cache scan error:", err)
	}
}
