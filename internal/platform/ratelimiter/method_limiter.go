package ratelimiter

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MethodLimiter applies a token bucket per RPC method name. The method set of
// an RPC client is small and fixed, so entries are never evicted.
type MethodLimiter struct {
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
	byMethod map[string]*rate.Limiter
}

// New creates a per-method limiter; returns nil if args are invalid, and a
// nil limiter allows everything.
func New(rps float64, burst int) *MethodLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	return &MethodLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		byMethod: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether one token can be consumed for the method at now.
func (l *MethodLimiter) Allow(method string, now time.Time) bool {
	if l == nil {
		return true
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.byMethod[method]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.byMethod[method] = lim
	}
	return lim.AllowN(now, 1)
}
