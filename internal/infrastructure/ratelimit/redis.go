package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "rate_limit:relay:"

// slidingWindowScript trims entries older than the window, counts the rest
// and records the current request if under the limit.
// KEYS[1]=key, ARGV[1]=now ms, ARGV[2]=window start ms, ARGV[3]=window ms,
// ARGV[4]=member, ARGV[5]=limit. Returns the new count or -1 when limited.
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local windowStart = tonumber(ARGV[2])
local windowMs = tonumber(ARGV[3])
local member = ARGV[4]
local limit = tonumber(ARGV[5])

redis.call('ZREMRANGEBYSCORE', key, '-inf', windowStart)

local count = redis.call('ZCARD', key)
if count < limit then
  redis.call('ZADD', key, now, member)
  redis.call('PEXPIRE', key, windowMs)
  return count + 1
end
return -1
`)

// RedisLimiter is a sliding window limiter shared by every relay instance
type RedisLimiter struct {
	client redis.Scripter
	limit  int
	window time.Duration
	prefix string
	now    func() time.Time
}

// NewRedisLimiter creates a limiter backed by redis
func NewRedisLimiter(client redis.Scripter, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: defaultKeyPrefix,
		now:    time.Now,
	}
}

// Allow records one request for key. Redis errors are returned with an
// allowing decision so callers can fail open.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := l.now()
	nowMs := now.UnixMilli()
	windowMs := l.window.Milliseconds()
	member := fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString())

	count, err := slidingWindowScript.Run(ctx, l.client, []string{l.prefix + key},
		nowMs, nowMs-windowMs, windowMs, member, l.limit).Int()
	if err != nil {
		return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit}, fmt.Errorf("rate limit script: %w", err)
	}
	if count < 0 {
		return Decision{Allowed: false, Limit: l.limit, Remaining: 0}, nil
	}
	return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit - count}, nil
}

var _ Limiter = (*RedisLimiter)(nil)
