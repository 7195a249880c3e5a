package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeLimitStore struct {
	counts  map[string]int64
	expires map[string]time.Duration
	incrErr error
	ttl     time.Duration
}

func newFakeLimitStore() *fakeLimitStore {
	return &fakeLimitStore{
		counts:  make(map[string]int64),
		expires: make(map[string]time.Duration),
		ttl:     30 * time.Second,
	}
}

func (f *fakeLimitStore) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.incrErr != nil {
		return redis.NewIntResult(0, f.incrErr)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeLimitStore) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.expires[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeLimitStore) TTL(_ context.Context, key string) *redis.DurationCmd {
	return redis.NewDurationResult(f.ttl, nil)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/register/", nil)
	req.RemoteAddr = ip + ":54321"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterAllowsUnderLimit(t *testing.T) {
	store := newFakeLimitStore()
	h := RateLimiter(store, 3, time.Minute, "register")(okHandler())

	for i := 0; i < 3; i++ {
		if rec := doRequest(h, "10.0.0.1"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}

	// The window is armed on the first hit only.
	if got := store.expires["register:ip:10.0.0.1"]; got != time.Minute {
		t.Errorf("expiry on counter = %v, want 1m", got)
	}
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	store := newFakeLimitStore()
	h := RateLimiter(store, 2, time.Minute, "register")(okHandler())

	doRequest(h, "10.0.0.1")
	doRequest(h, "10.0.0.1")

	rec := doRequest(h, "10.0.0.1")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "30" {
		t.Errorf("Retry-After = %q, want 30", rec.Header().Get("Retry-After"))
	}
	if !strings.Contains(rec.Body.String(), "RATE_LIMIT_EXCEEDED") {
		t.Errorf("body = %q, want RATE_LIMIT_EXCEEDED code", rec.Body.String())
	}

	// A different client is unaffected.
	if rec := doRequest(h, "10.0.0.2"); rec.Code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", rec.Code)
	}
}

func TestRateLimiterFailsOpen(t *testing.T) {
	store := newFakeLimitStore()
	store.incrErr = errors.New("redis down")
	h := RateLimiter(store, 1, time.Minute, "register")(okHandler())

	for i := 0; i < 5; i++ {
		if rec := doRequest(h, "10.0.0.1"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200 when Redis is unavailable", i+1, rec.Code)
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		xff    string
		xri    string
		want   string
	}{
		{"remote addr", "10.0.0.1:9999", "", "", "10.0.0.1"},
		{"x-forwarded-for single", "10.0.0.1:9999", "203.0.113.7", "", "203.0.113.7"},
		{"x-forwarded-for chain takes first", "10.0.0.1:9999", "203.0.113.7, 10.0.0.1", "", "203.0.113.7"},
		{"x-real-ip", "10.0.0.1:9999", "", "203.0.113.9", "203.0.113.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
