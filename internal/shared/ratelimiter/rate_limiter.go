// Package ratelimiter provides a Redis-backed fixed-window rate limiter for
// the authentication endpoints.
package ratelimiter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter limits how often a key (typically a client IP) may perform an
// operation within a fixed window. State lives in Redis so the limit holds
// across replicas; with a nil client the limiter is a no-op, matching the
// server's run-without-cache degradation.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int           // allowed calls per window
	window time.Duration // window length
	prefix string
}

// NewRateLimiter creates a new RateLimiter instance.
func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration, prefix string) *RateLimiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RateLimiter{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

// Allow reports whether the key may proceed, counting this call.
// Redis errors fail open: a broken limiter must not take down logins.
func (rl *RateLimiter) Allow(ctx context.Context, key string) bool {
	if rl.rdb == nil {
		return true
	}

	redisKey := fmt.Sprintf("%s:%s", rl.prefix, key)
	n, err := rl.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		slog.Warn("rate limiter unavailable, allowing request", "error", err)
		return true
	}
	if n == 1 {
		// First hit opens the window
		if err := rl.rdb.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			slog.Warn("rate limiter expire failed", "key", redisKey, "error", err)
		}
	}
	return n <= int64(rl.limit)
}

// Middleware returns a Gin middleware that rejects clients over the limit
// with 429, keyed by client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.Request.Context(), c.ClientIP()) {
			slog.Warn("rate limit exceeded", "remote_addr", c.ClientIP(), "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
