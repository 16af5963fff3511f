package middleware

import (
	"context"
	"strconv"
	"time"

	redisStore "hosted-checkout/internal/adapter/storage/redis"
	"hosted-checkout/pkg/apperror"
	"hosted-checkout/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*redisStore.RateLimitResult, error)
}

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// KeyFunc derives the counter key for a request.
type KeyFunc func(c *gin.Context) string

// WebhookKey limits the automation endpoint per client IP.
func WebhookKey(c *gin.Context) string {
	return "webhook:" + c.ClientIP()
}

// CompanySaveKey limits dashboard saves per client IP and company.
func CompanySaveKey(c *gin.Context) string {
	return c.ClientIP() + ":" + c.Param("companyId")
}

// RateLimiter creates a rate-limiting middleware. When the store fails the
// request is let through.
func RateLimiter(store RateLimitStore, rule RateLimitRule, key KeyFunc, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		k := key(c)

		result, err := store.Allow(c.Request.Context(), k, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("key", k).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			log.Warn().Str("key", k).Msg("rate limit exceeded")
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}
