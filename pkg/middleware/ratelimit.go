package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/response"
)

// RateLimiter is a Redis sliding-window limiter keyed by client IP
type RateLimiter struct {
	redis       *redis.Client
	name        string
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// NewRateLimiter creates a limiter allowing maxRequests per window.
// name separates the counters of independent limiters.
func NewRateLimiter(client *redis.Client, name string, maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redis:       client,
		name:        name,
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Middleware rejects requests over the limit with 429.
// A nil client or non-positive limit disables limiting; Redis errors allow the request.
func (rl *RateLimiter) Middleware(next http.HandlerFunc) http.HandlerFunc {
	if rl == nil || rl.redis == nil || rl.maxRequests <= 0 {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		identifier := clientIP(r)

		allowed, remaining, resetTime, err := rl.checkLimit(r.Context(), identifier)
		if err != nil {
			logger.Error(r.Context()).Err(err).Str("identifier", identifier).Msg("Rate limiter error")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.maxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			logger.Warn(r.Context()).
				Str("identifier", identifier).
				Int("limit", rl.maxRequests).
				Msg("Rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			response.Error(w, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}

		next.ServeHTTP(w, r)
	}
}

func (rl *RateLimiter) checkLimit(ctx context.Context, identifier string) (bool, int, time.Time, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", rl.name, identifier)
	now := rl.now()
	windowStart := now.Add(-rl.window)

	pipe := rl.redis.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	pipe.Expire(ctx, key, rl.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := countCmd.Val()
	remaining := max(rl.maxRequests-int(count)-1, 0)
	return count < int64(rl.maxRequests), remaining, now.Add(rl.window), nil
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
