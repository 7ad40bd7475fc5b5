package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// MatchLock serializes turn submissions against a single match. Requests may
// land on any server instance, so the lock lives in Redis: SET NX with a TTL
// and a per-holder token, released only by the holder via a compare-and-del
// script. Lock scope is one match; unrelated matches never contend.
type MatchLock interface {
	Acquire(ctx context.Context, matchID string, ttl time.Duration) (token string, ok bool, err error)
	Release(ctx context.Context, matchID, token string) error
}

type matchLock struct {
	client *redis.Client
}

// NewMatchLock creates a Redis-backed match lock.
func NewMatchLock(client *redis.Client) MatchLock {
	return &matchLock{client: client}
}

func (l *matchLock) key(matchID string) string {
	return "match:lock:" + matchID
}

func (l *matchLock) Acquire(ctx context.Context, matchID string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.key(matchID), token, ttl).Result()
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// releaseScript deletes the lock only when the stored token matches, so an
// expired lock reacquired by another submission is never released by the
// original holder.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

func (l *matchLock) Release(ctx context.Context, matchID, token string) error {
	return releaseScript.Run(ctx, l.client, []string{l.key(matchID)}, token).Err()
}
