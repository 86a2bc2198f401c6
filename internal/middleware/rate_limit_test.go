package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveFrom(t *testing.T, handler http.Handler, remoteAddr string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/coverage/dashboard", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware_AllowsBurstThenThrottles(t *testing.T) {
	handler := RateLimitMiddleware(okHandler())

	// Limiter state is keyed by client IP, so use an address no other test touches.
	const addr = "203.0.113.10:54321"

	for i := 0; i < burstSize; i++ {
		if code := serveFrom(t, handler, addr); code != http.StatusOK {
			t.Fatalf("Request %d within burst: expected 200, got %d", i+1, code)
		}
	}

	if code := serveFrom(t, handler, addr); code != http.StatusTooManyRequests {
		t.Errorf("Request beyond burst: expected 429, got %d", code)
	}
}

func TestRateLimitMiddleware_TracksClientsIndependently(t *testing.T) {
	handler := RateLimitMiddleware(okHandler())

	const exhausted = "203.0.113.20:40000"
	for i := 0; i < burstSize+1; i++ {
		serveFrom(t, handler, exhausted)
	}
	if code := serveFrom(t, handler, exhausted); code != http.StatusTooManyRequests {
		t.Fatalf("Expected exhausted client to be throttled, got %d", code)
	}

	if code := serveFrom(t, handler, "203.0.113.21:40000"); code != http.StatusOK {
		t.Errorf("Fresh client must not share another client's limiter, got %d", code)
	}
}

func TestRateLimitMiddleware_ExemptsLoopback(t *testing.T) {
	handler := RateLimitMiddleware(okHandler())

	for i := 0; i < burstSize*2; i++ {
		if code := serveFrom(t, handler, "127.0.0.1:60000"); code != http.StatusOK {
			t.Fatalf("Loopback request %d: expected 200, got %d", i+1, code)
		}
	}
}
