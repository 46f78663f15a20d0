package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/pkg/logger"
)

// CacheKeyPrefix prefixes every cached response key
const CacheKeyPrefix = "cache:"

// CacheConfig holds cache configuration
type CacheConfig struct {
	TTL              time.Duration
	CacheableMethods []string
	CacheableStatus  []int
}

// DefaultCacheConfig caches successful GETs for five minutes
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:              5 * time.Minute,
		CacheableMethods: []string{http.MethodGet, http.MethodHead},
		CacheableStatus:  []int{http.StatusOK},
	}
}

// CacheMiddleware serves cached JSON responses from Redis.
// A nil client disables caching; Redis errors fall through to the handler.
func CacheMiddleware(client *redis.Client, cfg CacheConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if client == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(cfg.CacheableMethods, r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := cacheKey(r)

			cached, err := client.Get(ctx, key).Bytes()
			if err == nil && len(cached) > 0 {
				logger.Debug(ctx).Str("path", r.URL.Path).Str("cache_key", key).Msg("Cache hit")
				w.Header().Set("X-Cache", "HIT")
				w.Header().Set("Content-Type", "application/json")
				w.Write(cached)
				return
			}
			if err != nil && err != redis.Nil {
				logger.Warn(ctx).Err(err).Msg("Cache lookup failed")
			}

			w.Header().Set("X-Cache", "MISS")
			cw := &cachingWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(cw, r)

			if !slices.Contains(cfg.CacheableStatus, cw.statusCode) {
				return
			}
			if err := client.Set(ctx, key, cw.body.Bytes(), cfg.TTL).Err(); err != nil {
				logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to cache response")
				return
			}
			logger.Debug(ctx).
				Str("path", r.URL.Path).
				Dur("ttl", cfg.TTL).
				Int("size", cw.body.Len()).
				Msg("Response cached")
		})
	}
}

// InvalidateCache deletes every cached response whose key matches pattern
func InvalidateCache(ctx context.Context, client *redis.Client, pattern string) error {
	if client == nil {
		return nil
	}

	var keys []string
	iter := client.Scan(ctx, 0, CacheKeyPrefix+pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}

	logger.Info(ctx).Int("count", len(keys)).Str("pattern", pattern).Msg("Cache invalidated")
	return nil
}

func cacheKey(r *http.Request) string {
	hash := sha256.Sum256([]byte(r.Method + ":" + r.URL.Path + ":" + r.URL.RawQuery))
	return CacheKeyPrefix + hex.EncodeToString(hash[:])
}

// cachingWriter tees the body so it can be stored after the handler returns
type cachingWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (w *cachingWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *cachingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
