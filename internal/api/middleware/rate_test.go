package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gotnext-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	newRouter := func(cfg RateLimitConfig) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if user := c.GetHeader("X-Test-User"); user != "" {
				c.Set(logger.UserIDKey, user)
			}
			c.Next()
		})
		router.Use(RateLimit(cfg))
		router.POST("/join", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	call := func(router *gin.Engine, user string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/join", nil)
		if user != "" {
			req.Header.Set("X-Test-User", user)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("burst then reject", func(t *testing.T) {
		router := newRouter(RateLimitConfig{RPS: 0.001, Burst: 2})

		assert.Equal(t, http.StatusOK, call(router, "alice").Code)
		assert.Equal(t, http.StatusOK, call(router, "alice").Code)

		w := call(router, "alice")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "Rate limit exceeded")
	})

	t.Run("callers have separate buckets", func(t *testing.T) {
		router := newRouter(RateLimitConfig{RPS: 0.001, Burst: 1})

		assert.Equal(t, http.StatusOK, call(router, "alice").Code)
		assert.Equal(t, http.StatusTooManyRequests, call(router, "alice").Code)
		assert.Equal(t, http.StatusOK, call(router, "bob").Code)
		assert.Equal(t, http.StatusOK, call(router, "").Code)
	})

	t.Run("disabled", func(t *testing.T) {
		router := newRouter(RateLimitConfig{})
		for i := 0; i < 50; i++ {
			assert.Equal(t, http.StatusOK, call(router, "alice").Code)
		}
	})
}
