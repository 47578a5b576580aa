package auth

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginLimiter throttles login attempts per client IP. Each IP gets its own
// token bucket; buckets idle longer than the cleanup window are dropped to
// keep the map bounded.
type LoginLimiter struct {
	mu      sync.Mutex
	clients map[string]*limiterEntry
	limit   rate.Limit
	burst   int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const limiterCleanupWindow = 10 * time.Minute

// NewLoginLimiter builds a per-IP limiter allowing ratePerMinute attempts
// per minute with the given burst. Non-positive values fall back to
// 10 attempts per minute with a burst of 5.
func NewLoginLimiter(ratePerMinute, burst int) *LoginLimiter {
	if ratePerMinute <= 0 {
		ratePerMinute = 10
	}
	if burst <= 0 {
		burst = 5
	}
	return &LoginLimiter{
		clients: make(map[string]*limiterEntry),
		limit:   rate.Limit(float64(ratePerMinute) / 60.0),
		burst:   burst,
	}
}

// Allow reports whether the client identified by ip may attempt a login now.
func (l *LoginLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, ok := l.clients[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = entry
	}
	entry.lastSeen = now

	// Opportunistic cleanup keeps the map from growing unbounded.
	for key, e := range l.clients {
		if now.Sub(e.lastSeen) > limiterCleanupWindow {
			delete(l.clients, key)
		}
	}

	return entry.limiter.Allow()
}

// ClientIP extracts the client address from a request, preferring the
// leftmost X-Forwarded-For entry when present.
func ClientIP(r *http.Request) string {
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
