package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"gotnext-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Requests per second per caller
	RPS float64
	// Burst size (number of requests that can be made in a single burst)
	Burst int
	// Limiters unused for this long are dropped
	IdleTTL time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore keeps one token bucket per caller
type limiterStore struct {
	mu       sync.Mutex
	config   RateLimitConfig
	visitors map[string]*visitor
	lastGC   time.Time
}

func (s *limiterStore) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastGC) > s.config.IdleTTL {
		for k, v := range s.visitors {
			if now.Sub(v.lastSeen) > s.config.IdleTTL {
				delete(s.visitors, k)
			}
		}
		s.lastGC = now
	}

	v, ok := s.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(s.config.RPS), s.config.Burst)}
		s.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

// RateLimit limits each caller, identified by user id or else client IP.
// A zero RPS disables limiting.
func RateLimit(config RateLimitConfig) gin.HandlerFunc {
	if config.RPS <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if config.IdleTTL <= 0 {
		config.IdleTTL = 10 * time.Minute
	}

	retryAfter := int(math.Ceil(1 / config.RPS))
	store := &limiterStore{config: config, visitors: make(map[string]*visitor)}

	return func(c *gin.Context) {
		key := c.GetString(logger.UserIDKey)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		now := time.Now()
		limiter := store.get(key, now)
		if !limiter.AllowN(now, 1) {
			logger.WithContext(c).WithField("path", c.FullPath()).Warn("rate limit exceeded")
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatFloat(config.RPS, 'f', -1, 64))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.TokensAt(now))))

		c.Next()
	}
}
