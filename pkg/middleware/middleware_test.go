package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/logger"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	valid, err := tokens.GenerateToken(42, "alice")
	require.NoError(t, err)

	var gotID uint
	var gotName string
	h := AuthMiddleware(tokens)(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFromContext(r.Context())
		gotName = UsernameFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"invalid token", "Bearer garbage", http.StatusForbidden},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status != http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"error"`)
			}
		})
	}

	assert.Equal(t, uint(42), gotID)
	assert.Equal(t, "alice", gotName)
}

func TestCacheMiddleware(t *testing.T) {
	mr, client := newRedis(t)

	calls := 0
	h := CacheMiddleware(client, DefaultCacheConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1}]`))
	}))

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, `[{"id":1}]`, second.Body.String())
	assert.Equal(t, 1, calls)
	assert.Len(t, mr.Keys(), 1)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/products", nil))
	assert.Equal(t, 2, calls)

	require.NoError(t, InvalidateCache(context.Background(), client, "*"))
	assert.Empty(t, mr.Keys())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, 3, calls)
}

func TestCacheMiddlewareSkipsErrors(t *testing.T) {
	mr, client := newRedis(t)

	h := CacheMiddleware(client, DefaultCacheConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products/99", nil))

	assert.Empty(t, mr.Keys())
}

func TestCacheMiddlewareNilClient(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := CacheMiddleware(nil, DefaultCacheConfig())(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestRateLimiter(t *testing.T) {
	_, client := newRedis(t)
	limiter := NewRateLimiter(client, "auth", 2, time.Minute)

	h := limiter.Middleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)
	second := send("10.0.0.1")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := send("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Contains(t, third.Body.String(), "Too many requests")

	assert.Equal(t, http.StatusOK, send("10.0.0.2").Code)
}

func TestRateLimiterDisabled(t *testing.T) {
	var limiter *RateLimiter
	called := false
	h := limiter.Middleware(func(w http.ResponseWriter, r *http.Request) { called = true })
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:4000"
	assert.Equal(t, "192.168.1.5", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientIP(req))
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "test", false)
	logger.SetLevel("info")

	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brew", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"path":"/brew"`)
}

func TestTracingMiddlewarePassesThrough(t *testing.T) {
	h := TracingMiddleware("test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
