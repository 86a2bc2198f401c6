package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// A dashboard page load fans out into the dashboard query plus a detail and
// an alerts fetch per opened row, so a single client legitimately fires a
// short burst of requests. Sustained traffic beyond the refresh interval of
// the dashboard poller gets throttled.
const (
	requestsPerSecond = 5
	burstSize         = 20
)

var (
	clientLimiters = make(map[string]*rate.Limiter)
	limitersMutex  sync.Mutex

	exemptIPs = map[string]bool{
		"127.0.0.1": true, // dashboard frontend served from the same host
	}
)

func limiterForClient(ip string) *rate.Limiter {
	limitersMutex.Lock()
	defer limitersMutex.Unlock()

	if limiter, exists := clientLimiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(requestsPerSecond, burstSize)
	clientLimiters[ip] = limiter
	return limiter
}

func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, _ := net.SplitHostPort(r.RemoteAddr)
		if exemptIPs[ip] {
			next.ServeHTTP(w, r)
			return
		}

		if !limiterForClient(ip).Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
