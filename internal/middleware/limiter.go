package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"Archwire/internal/httpx"
	"Archwire/pkg/metrics"

	"golang.org/x/time/rate"
)

// DefaultIdleTTL is how long a client's bucket survives without requests.
const DefaultIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client address. Buckets idle for
// longer than the TTL are dropped on the next sweep.
type IPRateLimiter struct {
	ips       map[string]*visitor
	mu        sync.Mutex
	r         rate.Limit
	b         int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:       make(map[string]*visitor),
		r:         r,
		b:         b,
		ttl:       DefaultIdleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if now.Sub(i.lastSweep) >= i.ttl {
		i.sweep(now)
	}

	v, exists := i.ips[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep drops idle visitors. Caller holds mu.
func (i *IPRateLimiter) sweep(now time.Time) {
	for ip, v := range i.ips {
		if now.Sub(v.lastSeen) >= i.ttl {
			delete(i.ips, ip)
		}
	}
	i.lastSweep = now
}

// LimitMiddleware rejects requests once the caller's bucket is empty.
func (i *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i.getLimiter(clientIP(r)).Allow() {
			metrics.RecordRateLimited()
			httpx.WriteError(w, http.StatusTooManyRequests, "rate_limited", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
