package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parcelpro/tracking-service/internal/core/domain"
)

const (
	// lockTTL bounds how long a crashed holder can keep a key locked.
	lockTTL = 5 * time.Second

	defaultAcquireTimeout = 1500 * time.Millisecond
	retryInterval         = 50 * time.Millisecond
)

// releaseScript deletes the lock only when the stored token matches,
// so an expired lock re-acquired by someone else is never released by
// the previous holder.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Locker provides per-tracking-number mutual exclusion backed by Redis.
// Key format: lock:parcel:<tracking_number>
type Locker struct {
	client         *redis.Client
	acquireTimeout time.Duration
}

// NewLocker creates a Locker. acquireTimeout bounds how long Acquire
// waits for a contended key before giving up; <= 0 uses the default.
func NewLocker(client *redis.Client, acquireTimeout time.Duration) *Locker {
	if acquireTimeout <= 0 {
		acquireTimeout = defaultAcquireTimeout
	}
	return &Locker{client: client, acquireTimeout: acquireTimeout}
}

// Acquire takes the lock for key, polling until the acquisition timeout
// elapses. On contention exhaustion it returns domain.ErrBusy so the
// caller can surface a retryable error instead of blocking.
func (l *Locker) Acquire(ctx context.Context, key string) (func(), error) {
	token := newToken()
	redisKey := l.key(key)
	deadline := time.Now().Add(l.acquireTimeout)

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("lock acquire: %w", err)
		}
		if ok {
			return func() { l.release(redisKey, token) }, nil
		}
		if time.Now().After(deadline) {
			return nil, domain.ErrBusy
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

func (l *Locker) release(redisKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	_ = releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err()
}

func (l *Locker) key(k string) string {
	return "lock:parcel:" + k
}

func newToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
