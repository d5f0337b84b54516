package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/openpitch/field-booking/internal/config"
)

// RateLimit applies a redis-backed token bucket per requester (user ID
// when authenticated, client IP otherwise) to mutating endpoints. With
// no redis client the middleware is a pass-through.
func RateLimit(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	script := redis.NewScript(`
        local key = KEYS[1]
        local now_ms = tonumber(ARGV[1])
        local capacity = tonumber(ARGV[2])
        local interval_ms = tonumber(ARGV[3])
        local ttl_seconds = tonumber(ARGV[4])

        local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
        local tokens = tonumber(state[1])
        local last_refill = tonumber(state[2])

        if tokens == nil or last_refill == nil then
            tokens = capacity
            last_refill = now_ms
        end

        local elapsed = math.max(0, now_ms - last_refill)
        local refilled = math.floor(elapsed / interval_ms)
        if refilled > 0 then
            tokens = math.min(capacity, tokens + refilled)
            last_refill = last_refill + (refilled * interval_ms)
        end

        local allowed = 0
        if tokens > 0 then
            allowed = 1
            tokens = tokens - 1
        end

        redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
        redis.call('EXPIRE', key, ttl_seconds)
        return allowed
    `)

	capacity := cfg.RateLimitCapacity
	intervalMs := cfg.RateLimitRefill.Milliseconds()
	if intervalMs <= 0 {
		intervalMs = time.Second.Milliseconds()
	}
	ttlSeconds := int64(10 * time.Minute / time.Second)

	return func(c *gin.Context) {
		subject := c.ClientIP()
		if requester, ok := RequesterFrom(c); ok {
			subject = "u" + strconv.FormatUint(uint64(requester.ID), 10)
		}
		key := fmt.Sprintf("rl:%s:%s", subject, c.FullPath())

		allowed, err := script.Run(
			c.Request.Context(), rdb, []string{key},
			time.Now().UnixMilli(), capacity, intervalMs, ttlSeconds,
		).Int()

		// Fail open: a broken limiter must not take the API down.
		if err == nil && allowed == 0 {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate_limited"})
			return
		}

		c.Next()
	}
}
