package ratelimit

import (
	"context"
	"sync"
	"time"

	"seat-hold-ticketing/internal/pkg/config"

	"golang.org/x/time/rate"
)

// evictEvery bounds how often idle buckets are scanned for removal.
const evictEvery = 256

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter keeps one token bucket per key in process memory.
type LocalLimiter struct {
	mu      sync.Mutex
	buckets map[string]*localBucket
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	calls   int
	now     func() time.Time
}

func NewLocalLimiter(cfg config.RateLimitConfig) *LocalLimiter {
	ttl := cfg.KeyTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &LocalLimiter{
		buckets: make(map[string]*localBucket),
		limit:   rate.Limit(cfg.Rate),
		burst:   cfg.Burst,
		idleTTL: ttl,
		now:     time.Now,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (Decision, error) {
	if l.limit <= 0 || l.burst <= 0 {
		return Decision{Allowed: true, Limit: l.burst, Remaining: l.burst}, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.calls++
	if l.calls%evictEvery == 0 {
		l.evictIdle(now)
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &localBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	r := b.limiter.ReserveN(now, 1)
	if !r.OK() {
		return Decision{Allowed: false, Limit: l.burst}, nil
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Decision{Allowed: false, Limit: l.burst, RetryAfter: delay}, nil
	}

	remaining := int(b.limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return Decision{Allowed: true, Limit: l.burst, Remaining: remaining}, nil
}

func (l *LocalLimiter) evictIdle(now time.Time) {
	for k, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.idleTTL {
			delete(l.buckets, k)
		}
	}
}
