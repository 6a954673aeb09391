package middleware

import (
	"fmt"
	"net/http"
	"time"

	"adwallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware applies a fixed-window limit per client IP backed by
// Redis. The window starts when the first request arrives and the key expires
// with the window.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s", c.ClientIP())

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			response.AbortError(c, http.StatusInternalServerError, "Rate limit check failed")
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			response.AbortError(c, http.StatusTooManyRequests, "Too many requests from this IP. Please try again later.")
			return
		}

		c.Next()
	}
}
