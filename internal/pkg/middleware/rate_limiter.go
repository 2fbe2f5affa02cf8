package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/constants"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/logger"
	"github.com/Phuti24/Singleton-Payment-API/internal/utils"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// RateLimiterMiddleware limits requests per route and client IP using a Redis
// counter that expires after Period. Redis failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf(constants.KeyRateLimit, c.Path(), c.RealIP())

			count, ttl, err := hit(ctx, config.RedisClient, key, config.Period)
			if err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable, allowing request",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > int64(config.Limit) {
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))

				logger.WarnCtx(ctx, "Rate limit exceeded",
					logger.String("client_ip", c.RealIP()),
					logger.String("path", c.Path()))
				return utils.TooManyRequestsResponse(c, "")
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))

			return next(c)
		}
	}
}

// hit counts one request against key and returns the new count with the time
// left in the window. Any counter found without an expiry gets one, so a
// failed EXPIRE cannot block a client for good.
func hit(ctx context.Context, client *redis.Client, key string, period time.Duration) (int64, time.Duration, error) {
	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)
	_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	ttl := pttl.Val()
	if ttl < 0 {
		if err := client.PExpire(ctx, key, period).Err(); err != nil {
			logger.WarnCtx(ctx, "Failed to set rate limit window",
				logger.String("key", key),
				logger.Err(err))
		}
		ttl = period
	}
	return incr.Val(), ttl, nil
}

// IPRateLimiter creates an IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Limit:       limit,
		Period:      period,
	})
}
