package allocator

import (
	"context"
	"sync"
	"time"

	"iris_manager/be/biz/config"
	db_redis "iris_manager/be/biz/db/redis"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	LockerLocal = "local"
	LockerRedis = "redis"
)

// Locker guards one critical section. unlock must be called exactly once.
type Locker interface {
	Lock(ctx context.Context) (unlock func(), err error)
}

type localLocker struct {
	sem chan struct{}
}

// NewLocalLocker serializes callers inside this process. Waiting honours ctx.
func NewLocalLocker() Locker {
	return &localLocker{sem: make(chan struct{}, 1)}
}

func (l *localLocker) Lock(ctx context.Context) (func(), error) {
	select {
	case l.sem <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-l.sem }) }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

var (
	defaultLocker     Locker
	defaultLockerOnce sync.Once
)

// DefaultLocker is built once from the allocator config so every request
// shares the same critical section.
func DefaultLocker() Locker {
	defaultLockerOnce.Do(func() {
		conf := config.GetAllocatorConf()
		switch conf.Locker {
		case LockerRedis:
			defaultLocker = NewRedisLocker(db_redis.GetRedisClient(), conf.LockKey,
				time.Duration(conf.LockTTLMillis)*time.Millisecond,
				time.Duration(conf.LockWaitMillis)*time.Millisecond)
			hlog.Infof("allocator uses redis locker: key=%s", conf.LockKey)
		default:
			defaultLocker = NewLocalLocker()
			hlog.Infof("allocator uses local locker")
		}
	})
	return defaultLocker
}
