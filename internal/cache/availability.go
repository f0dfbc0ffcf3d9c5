package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/TallerTurnos01/taller-scheduler/internal/metrics"
)

// AvailabilityCache guarda los slots calculados por (taller, fecha) con un
// TTL corto. Es estrictamente opcional: con redis caído o sin configurar,
// todo cae al motor y la disponibilidad sigue funcionando.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, ttl: ttl}
}

func key(tallerID uint, fecha string) string {
	return fmt.Sprintf("disponibilidad:%d:%s", tallerID, fecha)
}

func (c *AvailabilityCache) Get(ctx context.Context, tallerID uint, fecha string) ([]string, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(tallerID, fecha)).Result()
	if err != nil {
		metrics.IncAvailabilityCache("miss")
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		metrics.IncAvailabilityCache("miss")
		return nil, false
	}

	metrics.IncAvailabilityCache("hit")
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, tallerID uint, fecha string, slots []string) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	_ = c.rdb.Set(ctx, key(tallerID, fecha), raw, c.ttl).Err()
}

// Invalidate se llama al crear o cancelar un turno para ese día.
func (c *AvailabilityCache) Invalidate(ctx context.Context, tallerID uint, fecha string) {
	if c == nil || c.rdb == nil {
		return
	}

	_ = c.rdb.Del(ctx, key(tallerID, fecha)).Err()
}
