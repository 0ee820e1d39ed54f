package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"seat-hold-ticketing/internal/handler/httperr"
	"seat-hold-ticketing/internal/infra/ratelimit"
	"seat-hold-ticketing/internal/pkg/config"
	"seat-hold-ticketing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	enabled bool
}

func NewRateLimitMiddleware(limiter ratelimit.Limiter, cfg config.RateLimitConfig) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, enabled: cfg.Enabled}
}

// Limit buckets requests per scope and authenticated user, or per client IP
// when the route is public. A failing limiter lets the request through.
func (m *RateLimitMiddleware) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		key := scope + ":ip:" + c.ClientIP()
		if userID, ok := GetUserID(c); ok {
			key = scope + ":user:" + strconv.FormatInt(userID, 10)
		}

		d, err := m.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "rate limiter unavailable, request allowed",
				"component", "ratelimit", "scope", scope, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		if !d.Allowed {
			retry := int(math.Ceil(d.RetryAfter.Seconds()))
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errs.ErrRateLimited,
				errs.CodeRateLimited, errs.ErrRateLimited.Message(), nil)
			return
		}
		c.Next()
	}
}
