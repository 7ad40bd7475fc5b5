package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CooldownCache gates match creation after a completion. The timer is just a
// Redis key with a TTL; Remaining reads the TTL back so callers can report
// how long the pair still has to wait.
type CooldownCache interface {
	Start(ctx context.Context, pairID, activityType string, d time.Duration) error
	Remaining(ctx context.Context, pairID, activityType string) (time.Duration, error)
}

type cooldownCache struct {
	client *redis.Client
}

func NewCooldownCache(client *redis.Client) CooldownCache {
	return &cooldownCache{client: client}
}

func (c *cooldownCache) key(pairID, activityType string) string {
	return "cooldown:" + activityType + ":" + pairID
}

func (c *cooldownCache) Start(ctx context.Context, pairID, activityType string, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	return c.client.Set(ctx, c.key(pairID, activityType), "1", d).Err()
}

func (c *cooldownCache) Remaining(ctx context.Context, pairID, activityType string) (time.Duration, error) {
	d, err := c.client.PTTL(ctx, c.key(pairID, activityType)).Result()
	if err != nil {
		return 0, err
	}
	// PTTL returns negative durations for missing keys or keys without TTL.
	if d < 0 {
		return 0, nil
	}
	return d, nil
}
