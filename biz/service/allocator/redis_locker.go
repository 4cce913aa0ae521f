package allocator

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockKey  = "iris:emp_id_lock"
	defaultLockTTL  = 5 * time.Second
	defaultLockWait = 3 * time.Second
	lockRetryEvery  = 20 * time.Millisecond
)

var ErrLockTimeout = errors.New("allocation lock wait timeout")

// release deletes the lock only if it still holds our token.
var release = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a lease shared by every process using the same Redis.
// The ttl bounds how long a crashed holder blocks the others.
type RedisLocker struct {
	rdb  redis.Cmdable
	key  string
	ttl  time.Duration
	wait time.Duration
}

func NewRedisLocker(rdb redis.Cmdable, key string, ttl, wait time.Duration) *RedisLocker {
	if key == "" {
		key = defaultLockKey
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	if wait <= 0 {
		wait = defaultLockWait
	}
	return &RedisLocker{rdb: rdb, key: key, ttl: ttl, wait: wait}
}

func (l *RedisLocker) Lock(ctx context.Context) (func(), error) {
	token := uuid.NewString()
	deadline := time.NewTimer(l.wait)
	defer deadline.Stop()
	ticker := time.NewTicker(lockRetryEvery)
	defer ticker.Stop()

	for {
		ok, err := l.rdb.SetNX(ctx, l.key, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return l.unlockFunc(ctx, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, ErrLockTimeout
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) unlockFunc(ctx context.Context, token string) func() {
	released := false
	return func() {
		if released {
			return
		}
		released = true
		// release even when the request ctx is already cancelled
		if err := release.Run(context.WithoutCancel(ctx), l.rdb, []string{l.key}, token).Err(); err != nil {
			hlog.CtxErrorf(ctx, "release allocation lock err: %v", err)
		}
	}
}
