package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const pointsTTL = 5 * time.Minute

// PointsCache is a read-through cache for pair point totals, which the rest
// of the product polls far more often than the ledger changes. Invalidated on
// every credit.
type PointsCache interface {
	Get(ctx context.Context, pairID string) (total int, ok bool, err error)
	Set(ctx context.Context, pairID string, total int) error
	Invalidate(ctx context.Context, pairID string) error
}

type pointsCache struct {
	client *redis.Client
}

func NewPointsCache(client *redis.Client) PointsCache {
	return &pointsCache{client: client}
}

func (c *pointsCache) key(pairID string) string {
	return "points:" + pairID
}

func (c *pointsCache) Get(ctx context.Context, pairID string) (int, bool, error) {
	val, err := c.client.Get(ctx, c.key(pairID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	total, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, nil
	}
	return total, true, nil
}

func (c *pointsCache) Set(ctx context.Context, pairID string, total int) error {
	return c.client.Set(ctx, c.key(pairID), strconv.Itoa(total), pointsTTL).Err()
}

func (c *pointsCache) Invalidate(ctx context.Context, pairID string) error {
	return c.client.Del(ctx, c.key(pairID)).Err()
}
