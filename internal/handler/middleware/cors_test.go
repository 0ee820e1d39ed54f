//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"seat-hold-ticketing/internal/handler/middleware"
	"seat-hold-ticketing/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(cfg config.CORSConfig) *gin.Engine {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(cfg))
		r.POST("/api/events/1/holds", func(c *gin.Context) { c.Status(http.StatusCreated) })
		return r
	}
	base := config.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	t.Run("Normal case: protocol headers are exposed even when not configured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/events/1/holds", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		newRouter(base).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		exposed := w.Header().Get("Access-Control-Expose-Headers")
		for _, h := range []string{"Idempotent-Replayed", "Retry-After", "X-Ratelimit-Limit"} {
			assert.Contains(t, exposed, h)
		}
	})

	t.Run("Normal case: preflight allows the idempotency header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/events/1/holds", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "Idempotency-Key")
		w := httptest.NewRecorder()
		newRouter(base).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Idempotency-Key")
	})

	t.Run("Normal case: wildcard origin drops credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"*"}
		req := httptest.NewRequest(http.MethodPost, "/api/events/1/holds", nil)
		req.Header.Set("Origin", "https://box-office.example")
		w := httptest.NewRecorder()
		newRouter(cfg).ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Error case: unknown origin is refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/events/1/holds", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		newRouter(base).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
