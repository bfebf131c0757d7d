package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/paasops/glusterfs-broker/internal/config"
	"github.com/paasops/glusterfs-broker/internal/utils"
	"github.com/paasops/glusterfs-broker/pkg/logger"
)

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// CallerRateLimit limits requests per authenticated platform caller,
// keyed by the JWT subject. Fails open on redis errors.
func (m *RateLimitMiddleware) CallerRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, err := utils.GetCallerIDFromContext(c.Request.Context())
		if err != nil {
			// Fall back to the gin keys set by the auth middleware.
			if v, ok := c.Get(string(utils.CallerIDKey)); ok {
				callerID, _ = v.(string)
			}
		}
		if callerID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Caller identity required for rate limiting"})
			c.Abort()
			return
		}

		key := fmt.Sprintf("rate_limit:caller:%s", callerID)
		m.limit(c, key, m.config.CallerRateLimit)
	}
}

// GlobalRateLimit implements global rate limiting based on IP
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())
		m.limit(c, key, limit)
	}
}

func (m *RateLimitMiddleware) limit(c *gin.Context, key string, limit int) {
	current, err := m.redis.Get(c.Request.Context(), key).Int()
	if err != nil && err != redis.Nil {
		m.logger.Error("redis error in rate limiting", err)
		// Allow request to continue on Redis error (fail open)
		c.Next()
		return
	}

	reset := time.Now().Add(time.Minute).Unix()

	if current >= limit {
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Rate limit exceeded",
			"limit": limit,
			"reset": reset,
		})
		c.Abort()
		return
	}

	pipe := m.redis.Pipeline()
	pipe.Incr(c.Request.Context(), key)
	pipe.Expire(c.Request.Context(), key, time.Minute)
	if _, err := pipe.Exec(c.Request.Context()); err != nil {
		m.logger.Error("redis pipeline error in rate limiting", err)
	}

	remaining := limit - (current + 1)
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

	c.Next()
}
