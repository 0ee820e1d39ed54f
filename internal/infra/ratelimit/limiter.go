package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"seat-hold-ticketing/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Decision is the outcome of one token request.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// NewLimiter returns a Redis-backed limiter shared by every instance when a
// client is configured, falling back to a per-process limiter when Redis is
// absent or failing.
func NewLimiter(cfg config.RateLimitConfig, rdb *redis.Client) Limiter {
	local := NewLocalLimiter(cfg)
	if rdb == nil {
		return local
	}
	return &fallbackLimiter{
		primary:  NewRedisLimiter(rdb, cfg),
		fallback: local,
	}
}

type fallbackLimiter struct {
	primary  Limiter
	fallback Limiter
}

func (f *fallbackLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	d, err := f.primary.Allow(ctx, key)
	if err == nil {
		return d, nil
	}
	slog.WarnContext(ctx, "rate limiter backend failed, using in-process limiter",
		"component", "ratelimit", "error", err)
	return f.fallback.Allow(ctx, key)
}
