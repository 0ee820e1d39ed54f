//go:build unit

package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"seat-hold-ticketing/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalLimiter(now *time.Time) *LocalLimiter {
	l := NewLocalLimiter(config.RateLimitConfig{Enabled: true, Rate: 1, Burst: 2, KeyTTL: time.Minute})
	l.now = func() time.Time { return *now }
	return l
}

func TestLocalLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("Normal case: burst is allowed then requests are rejected with retry-after", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		l := newTestLocalLimiter(&now)

		for i := 0; i < 2; i++ {
			d, err := l.Allow(ctx, "user:1")
			require.NoError(t, err)
			assert.True(t, d.Allowed, "request %d should pass", i+1)
		}

		d, err := l.Allow(ctx, "user:1")
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Equal(t, 2, d.Limit)
		assert.Greater(t, d.RetryAfter, time.Duration(0))
		assert.LessOrEqual(t, d.RetryAfter, time.Second)
	})

	t.Run("Normal case: tokens refill over time", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		l := newTestLocalLimiter(&now)

		for i := 0; i < 2; i++ {
			_, _ = l.Allow(ctx, "user:1")
		}
		now = now.Add(time.Second)

		d, err := l.Allow(ctx, "user:1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	})

	t.Run("Normal case: keys do not share buckets", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		l := newTestLocalLimiter(&now)

		for i := 0; i < 3; i++ {
			_, _ = l.Allow(ctx, "user:1")
		}

		d, err := l.Allow(ctx, "user:2")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	})

	t.Run("Normal case: rejected requests do not consume tokens", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		l := newTestLocalLimiter(&now)

		for i := 0; i < 10; i++ {
			_, _ = l.Allow(ctx, "user:1")
		}
		now = now.Add(time.Second)

		d, err := l.Allow(ctx, "user:1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	})

	t.Run("Normal case: zero rate disables limiting", func(t *testing.T) {
		l := NewLocalLimiter(config.RateLimitConfig{Rate: 0, Burst: 0})
		for i := 0; i < 100; i++ {
			d, err := l.Allow(ctx, "user:1")
			require.NoError(t, err)
			require.True(t, d.Allowed)
		}
	})
}

type stubLimiter struct {
	decision Decision
	err      error
	calls    int
}

func (s *stubLimiter) Allow(context.Context, string) (Decision, error) {
	s.calls++
	return s.decision, s.err
}

func TestFallbackLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("Normal case: primary decision is used when it succeeds", func(t *testing.T) {
		primary := &stubLimiter{decision: Decision{Allowed: false, RetryAfter: time.Second}}
		fallback := &stubLimiter{decision: Decision{Allowed: true}}
		l := &fallbackLimiter{primary: primary, fallback: fallback}

		d, err := l.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Equal(t, 0, fallback.calls)
	})

	t.Run("Error case: primary failure falls back to the local limiter", func(t *testing.T) {
		primary := &stubLimiter{err: errors.New("connection refused")}
		fallback := &stubLimiter{decision: Decision{Allowed: true, Remaining: 3}}
		l := &fallbackLimiter{primary: primary, fallback: fallback}

		d, err := l.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, 3, d.Remaining)
		assert.Equal(t, 1, fallback.calls)
	})
}

func TestNewLimiter(t *testing.T) {
	l := NewLimiter(config.RateLimitConfig{Rate: 1, Burst: 1}, nil)
	_, ok := l.(*LocalLimiter)
	assert.True(t, ok, "without redis the in-process limiter is used")
}
