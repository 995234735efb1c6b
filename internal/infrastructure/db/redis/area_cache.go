package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/catatlas/cat-registry/internal/core/domain"
)

const areaCacheTTL = 30 * time.Second

// AreaCache memoises area query results in Redis so repeated map viewport
// refreshes skip the containment query. Entries expire quickly; the cache is
// an accelerator, never a source of truth.
// Key format: area:<topRight>:<bottomLeft>
type AreaCache struct {
	client *redis.Client
}

// NewAreaCache creates an AreaCache wrapping the given Redis client.
func NewAreaCache(client *redis.Client) *AreaCache {
	return &AreaCache{client: client}
}

// Get returns the cached result for the given corners, if any.
func (c *AreaCache) Get(ctx context.Context, topRight, bottomLeft string) ([]domain.Cat, bool, error) {
	raw, err := c.client.Get(ctx, c.key(topRight, bottomLeft)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("area cache get: %w", err)
	}

	var cats []domain.Cat
	if err := json.Unmarshal(raw, &cats); err != nil {
		return nil, false, fmt.Errorf("area cache decode: %w", err)
	}
	return cats, true, nil
}

// Set stores the result for the given corners (expires after areaCacheTTL).
func (c *AreaCache) Set(ctx context.Context, topRight, bottomLeft string, cats []domain.Cat) error {
	raw, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("area cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(topRight, bottomLeft), raw, areaCacheTTL).Err()
}

func (c *AreaCache) key(topRight, bottomLeft string) string {
	return fmt.Sprintf("area:%s:%s", topRight, bottomLeft)
}
