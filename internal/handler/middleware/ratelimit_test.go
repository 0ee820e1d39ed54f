//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"seat-hold-ticketing/internal/handler/middleware"
	"seat-hold-ticketing/internal/infra/ratelimit"
	"seat-hold-ticketing/internal/pkg/config"
	"seat-hold-ticketing/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLimiter struct {
	decision ratelimit.Decision
	err      error
	keys     []string
}

func (l *stubLimiter) Allow(_ context.Context, key string) (ratelimit.Decision, error) {
	l.keys = append(l.keys, key)
	return l.decision, l.err
}

func newLimitedRouter(l ratelimit.Limiter, enabled bool, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.NewRateLimitMiddleware(l, config.RateLimitConfig{Enabled: enabled})

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/holds", func(c *gin.Context) {
		if userID > 0 {
			c.Set("user_id", userID)
		}
		c.Next()
	}, mw.Limit("hold"), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("Normal case: allowed request carries quota headers", func(t *testing.T) {
		l := &stubLimiter{decision: ratelimit.Decision{Allowed: true, Limit: 10, Remaining: 9}}
		r := newLimitedRouter(l, true, 7)

		w := httptest.PerformRequest(t, r, http.MethodPost, "/holds", nil, "")

		require.Equal(t, http.StatusCreated, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{
			"X-RateLimit-Limit":     "10",
			"X-RateLimit-Remaining": "9",
		})
		assert.Equal(t, []string{"hold:user:7"}, l.keys)
	})

	t.Run("Normal case: anonymous callers are keyed by ip", func(t *testing.T) {
		l := &stubLimiter{decision: ratelimit.Decision{Allowed: true, Limit: 10, Remaining: 9}}
		r := newLimitedRouter(l, true, 0)

		httptest.PerformRequest(t, r, http.MethodPost, "/holds", nil, "")

		require.Len(t, l.keys, 1)
		assert.Contains(t, l.keys[0], "hold:ip:")
	})

	t.Run("Error case: denied request gets 429 with Retry-After rounded up", func(t *testing.T) {
		l := &stubLimiter{decision: ratelimit.Decision{Limit: 10, RetryAfter: 1200 * time.Millisecond}}
		r := newLimitedRouter(l, true, 7)

		w := httptest.PerformRequest(t, r, http.MethodPost, "/holds", nil, "")

		httptest.AssertErrorCode(t, w, http.StatusTooManyRequests, "RATE_LIMITED")
		httptest.AssertHeaders(t, w, map[string]string{"Retry-After": "2", "X-RateLimit-Remaining": "0"})
	})

	t.Run("Error case: sub-second wait still asks for one second", func(t *testing.T) {
		l := &stubLimiter{decision: ratelimit.Decision{Limit: 10}}
		r := newLimitedRouter(l, true, 7)

		w := httptest.PerformRequest(t, r, http.MethodPost, "/holds", nil, "")

		httptest.AssertHeaders(t, w, map[string]string{"Retry-After": "1"})
	})

	t.Run("Normal case: limiter failure lets the request through", func(t *testing.T) {
		l := &stubLimiter{err: errors.New("redis down")}
		r := newLimitedRouter(l, true, 7)

		w := httptest.PerformRequest(t, r, http.MethodPost, "/holds", nil, "")
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Normal case: disabled middleware never asks the limiter", func(t *testing.T) {
		l := &stubLimiter{}
		r := newLimitedRouter(l, false, 7)

		w := httptest.PerformRequest(t, r, http.MethodPost, "/holds", nil, "")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, l.keys)
	})
}
