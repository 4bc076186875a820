package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v9"
)

// RequestRateLimiter is satisfied by *redis_rate.Limiter.
type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit allows allowedPerMin requests per client IP for the named route.
func RateLimit(rateLimiter RequestRateLimiter, routeName string, allowedPerMin int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := routeName + ":" + c.ClientIP()
		res, err := rateLimiter.Allow(c.Request.Context(), key, redis_rate.PerMinute(allowedPerMin))
		if err != nil {
			requestLogger(c).Errorf("rate limit %s: %s", key, err)
			abortWithError(c, http.StatusInternalServerError, "rate limit internal error")
			return
		}

		if res.Allowed > 0 {
			c.Next()
			return
		}

		c.Header("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())+1))
		abortWithError(c, http.StatusTooManyRequests, fmt.Sprintf("retry after %.0f seconds", res.RetryAfter.Seconds()))
	}
}
