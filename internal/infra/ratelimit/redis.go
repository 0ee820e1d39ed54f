package ratelimit

import (
	"context"
	"time"

	"seat-hold-ticketing/internal/pkg/config"
	"seat-hold-ticketing/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// Token bucket with continuous refill. State lives in one hash per key and
// expires once the bucket would be full again anyway.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local rate_per_ms = tonumber(ARGV[2])
local burst = tonumber(ARGV[3])
local ttl_ms = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
	tokens = burst
	ts = now_ms
end

local elapsed = math.max(0, now_ms - ts)
tokens = math.min(burst, tokens + elapsed * rate_per_ms)

local allowed = 0
local retry_ms = 0
if tokens >= 1 then
	allowed = 1
	tokens = tokens - 1
else
	retry_ms = math.ceil((1 - tokens) / rate_per_ms)
end

redis.call('HSET', key, 'tokens', tostring(tokens), 'ts', now_ms)
redis.call('PEXPIRE', key, ttl_ms)

return { allowed, math.floor(tokens), retry_ms }
`)

type RedisLimiter struct {
	rdb   redis.Scripter
	rate  float64
	burst int
	ttl   time.Duration
	now   func() time.Time
}

func NewRedisLimiter(rdb redis.Scripter, cfg config.RateLimitConfig) *RedisLimiter {
	ttl := cfg.KeyTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisLimiter{
		rdb:   rdb,
		rate:  cfg.Rate,
		burst: cfg.Burst,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	if l.rate <= 0 || l.burst <= 0 {
		return Decision{Allowed: true, Limit: l.burst, Remaining: l.burst}, nil
	}

	vals, err := tokenBucketScript.Run(ctx, l.rdb,
		[]string{keyPrefix + key},
		l.now().UnixMilli(),
		l.rate/1000,
		l.burst,
		l.ttl.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return Decision{}, errs.Wrap(err, "run token bucket script")
	}
	if len(vals) != 3 {
		return Decision{}, errs.Newf("unexpected token bucket result: %v", vals)
	}

	remaining := int(vals[1])
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:    vals[0] == 1,
		Limit:      l.burst,
		Remaining:  remaining,
		RetryAfter: time.Duration(vals[2]) * time.Millisecond,
	}, nil
}
