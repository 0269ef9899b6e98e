// Package ratelimiter provides a Redis-backed fixed-window request limiter.
package ratelimiter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"expensepro_backend/internal/api"
)

// Limiter counts requests per source address in fixed windows.
type Limiter struct {
	rdb    *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewLimiter creates a new Limiter instance. prefix namespaces the counter
// keys so several limiters can share one Redis.
func NewLimiter(rdb *redis.Client, prefix string, limit int64, window time.Duration) *Limiter {
	if limit <= 0 {
		limit = 100
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &Limiter{rdb: rdb, prefix: prefix, limit: limit, window: window}
}

// Middleware returns a Gin middleware enforcing the limit per client IP.
// Without Redis the limiter degrades to a pass-through, matching how the rest
// of the service treats Redis as optional.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.rdb == nil {
			c.Next()
			return
		}

		key := l.prefix + ":" + c.ClientIP()
		ctx := c.Request.Context()

		count, err := l.rdb.Incr(ctx, key).Result()
		if err != nil {
			// Fail open: a Redis outage must not take the API down.
			slog.Warn("rate limiter unavailable", "error", err, "key", key)
			c.Next()
			return
		}
		if count == 1 {
			// First hit opens the window.
			if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
				slog.Warn("rate limiter expire failed", "error", err, "key", key)
			}
		}
		if count > l.limit {
			slog.Warn("rate limit exceeded", "remote_addr", c.ClientIP(), "prefix", l.prefix, "count", count)
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				api.ErrorResponse{Error: "Too many requests, please try again later."})
			return
		}
		c.Next()
	}
}
