package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for counter keys
	KeyPrefix string
	// KeyFunc identifies the caller. Defaults to KeyByUserOrIP.
	KeyFunc func(c *gin.Context) string
}

// counter increments a fixed-window request count.
type counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter handles fixed-window rate limiting
type RateLimiter struct {
	counter counter
	config  RateLimitConfig
	now     func() time.Time
}

// NewRateLimiter creates a rate limiter backed by Redis, or by process
// memory when redisClient is nil.
func NewRateLimiter(redisClient *redis.Client, config RateLimitConfig) *RateLimiter {
	var c counter
	if redisClient != nil {
		c = &redisCounter{redis: redisClient}
	} else {
		c = newMemoryCounter()
	}
	if config.KeyFunc == nil {
		config.KeyFunc = KeyByUserOrIP
	}
	return &RateLimiter{counter: c, config: config, now: time.Now}
}

// NewDietPlanRateLimiter allows 10 diet plan generations per user per hour.
func NewDietPlanRateLimiter(redisClient *redis.Client) *RateLimiter {
	return NewRateLimiter(redisClient, RateLimitConfig{
		Window:    time.Hour,
		Limit:     10,
		KeyPrefix: "rate_limit:diet_plan",
		KeyFunc:   KeyByUserOrIP,
	})
}

// NewChatRateLimiter allows 30 chat messages per client IP per minute.
func NewChatRateLimiter(redisClient *redis.Client) *RateLimiter {
	return NewRateLimiter(redisClient, RateLimitConfig{
		Window:    time.Minute,
		Limit:     30,
		KeyPrefix: "rate_limit:chat",
		KeyFunc:   KeyByIP,
	})
}

// KeyByUserOrIP keys authenticated requests by user id and the rest by IP.
func KeyByUserOrIP(c *gin.Context) string {
	if id, ok := GetUserID(c); ok {
		return "user:" + id.String()
	}
	return KeyByIP(c)
}

// KeyByIP keys requests by client IP.
func KeyByIP(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}

// RateLimitMiddleware returns a Gin middleware that enforces rate limiting
func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, resetTime, err := rl.IsAllowed(c.Request.Context(), rl.config.KeyFunc(c))
		if err != nil {
			// A broken counter must not take the endpoint down.
			logrus.WithError(err).Warn("rate limit check failed")
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			retryAfter := int(resetTime.Sub(rl.now()).Seconds())
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests, please try again later.",
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}

// IsAllowed counts a request from key against the current window.
// Returns: allowed, remaining requests, reset time, error
func (rl *RateLimiter) IsAllowed(ctx context.Context, key string) (bool, int, time.Time, error) {
	windowStart := rl.now().Truncate(rl.config.Window)
	windowKey := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, key, windowStart.Unix())

	count, err := rl.counter.Incr(ctx, windowKey, rl.config.Window)
	if err != nil {
		return false, 0, time.Time{}, err
	}

	remaining := rl.config.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return int(count) <= rl.config.Limit, remaining, windowStart.Add(rl.config.Window), nil
}

type redisCounter struct {
	redis *redis.Client
}

func (r *redisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incrCmd.Val(), nil
}

type memoryCounter struct {
	mu     sync.Mutex
	counts map[string]memoryCount
}

type memoryCount struct {
	n         int64
	expiresAt time.Time
}

func newMemoryCounter() *memoryCounter {
	return &memoryCounter{counts: make(map[string]memoryCount)}
}

func (m *memoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for k, v := range m.counts {
		if now.After(v.expiresAt) {
			delete(m.counts, k)
		}
	}

	entry, ok := m.counts[key]
	if !ok {
		entry.expiresAt = now.Add(window)
	}
	entry.n++
	m.counts[key] = entry
	return entry.n, nil
}
