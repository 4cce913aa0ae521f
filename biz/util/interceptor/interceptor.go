package interceptor

import (
	"context"
	"time"

	db_redis "iris_manager/be/biz/db/redis"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rate_limit:"

// fixedWindow counts hits in a window. INCR and EXPIRE run atomically and
// a key left without TTL gets one again on the next hit.
// KEYS[1]: counter key, ARGV[1]: window seconds, ARGV[2]: limit
var fixedWindow = redis.NewScript(`
local key = KEYS[1]
local window = ARGV[1]
local limit = tonumber(ARGV[2])

local current = redis.call("INCR", key)

if current == 1 then
    redis.call("EXPIRE", key, window)
elseif redis.call("TTL", key) == -1 then
    redis.call("EXPIRE", key, window)
end

if current > limit then
    return 0
end
return 1
`)

type Interceptor struct {
	window time.Duration
	limit  int64
}

func NewInterceptor(windowSeconds int, limit int64) *Interceptor {
	return &Interceptor{
		window: time.Duration(windowSeconds) * time.Second,
		limit:  limit,
	}
}

func Key(key string) string {
	return keyPrefix + key
}

// Allow records one hit for key and reports whether it is still within the limit.
func (i *Interceptor) Allow(ctx context.Context, key string) (bool, error) {
	result, err := fixedWindow.Run(ctx, db_redis.GetRedisClient(),
		[]string{Key(key)}, int(i.window.Seconds()), i.limit).Int64()
	if err != nil {
		return false, err
	}
	return result == 1, nil
}

// Reset drops the counter for key.
func (i *Interceptor) Reset(ctx context.Context, key string) error {
	return db_redis.GetRedisClient().Del(ctx, Key(key)).Err()
}
