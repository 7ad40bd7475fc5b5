package service

import (
	"context"
	"time"

	"linked/internal/cache"
	"linked/internal/model"
)

// Lock parameters for per-match serialization. The TTL bounds how long a
// crashed holder can keep a match stuck; retries absorb short contention from
// a partner's in-flight submission.
const (
	matchLockTTL   = 5 * time.Second
	lockAttempts   = 5
	lockRetryDelay = 100 * time.Millisecond
)

// acquireMatchLock takes the exclusive per-match lock, retrying briefly
// before giving up with ErrMatchBusy.
func acquireMatchLock(ctx context.Context, locks cache.MatchLock, matchID string) (string, error) {
	for attempt := 0; attempt < lockAttempts; attempt++ {
		token, ok, err := locks.Acquire(ctx, matchID, matchLockTTL)
		if err != nil {
			return "", err
		}
		if ok {
			return token, nil
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
	return "", model.ErrMatchBusy
}
