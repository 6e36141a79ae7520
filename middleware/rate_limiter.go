package middleware

import (
	"net/http"
	"time"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RateLimiter(client *redis.Client, maxRequests int, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	log = log.Named("ratelimit")
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ip := c.ClientIP()
		endpoint := c.FullPath() // /api/v1/admin/orders, /api/v1/admin/orders/:id/items, etc.
		method := c.Request.Method

		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + ip + ":" + method + ":" + endpoint
		resetKey := key + ":resetAt"

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.Error("redis incr failed", zap.String("key", key), zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Redis error"))
			c.Abort()
			return
		}

		// First request → set expiry and stable resetAt
		if count == 1 {
			client.Expire(ctx, key, window)
			client.Set(ctx, resetKey, time.Now().Add(window).Unix(), window)
		}

		resetAtUnix, _ := client.Get(ctx, resetKey).Int64()
		rate := rateInfo(maxRequests, count, time.Unix(resetAtUnix, 0), time.Now())

		// Store in context for controllers
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// rateInfo clamps remaining requests and reset seconds at zero.
func rateInfo(maxRequests int, count int64, resetAt, now time.Time) *models.RateLimiter {
	remaining := maxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}
	resetInSeconds := int(resetAt.Sub(now).Seconds())
	if resetInSeconds < 0 {
		resetInSeconds = 0
	}
	return &models.RateLimiter{
		Limit:          maxRequests,
		Remaining:      remaining,
		ResetAt:        resetAt,
		ResetInSeconds: resetInSeconds,
	}
}
