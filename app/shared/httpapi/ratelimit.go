package httpapi

import (
	"math"
	"net/http"
	"net/netip"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// sweepEvery is how often idle client buckets are dropped.
const sweepEvery = 5 * time.Minute

type bucket struct {
	limiter *rate.Limiter
	used    time.Time
}

// Throttle is a token bucket per client address. It expects chi's RealIP
// middleware to have run, so RemoteAddr already names the real client.
type Throttle struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	buckets   map[string]*bucket
	nextSweep time.Time
	now       func() time.Time
}

// NewThrottle allows rps sustained requests per client with the given burst.
func NewThrottle(rps float64, burst int) *Throttle {
	return &Throttle{
		limit:   rate.Limit(rps),
		burst:   burst,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// clientKey reduces RemoteAddr to the address a bucket is kept for. RealIP
// leaves a bare address while direct connections carry a port. IPv6 clients
// are grouped by their /64.
func clientKey(remote string) string {
	addr, err := netip.ParseAddr(remote)
	if err != nil {
		ap, perr := netip.ParseAddrPort(remote)
		if perr != nil {
			return remote
		}
		addr = ap.Addr()
	}
	addr = addr.Unmap()
	if addr.Is6() {
		if p, err := addr.Prefix(64); err == nil {
			return p.String()
		}
	}
	return addr.String()
}

// reserve takes a token for key and reports how long the caller would have
// to wait. A positive wait means the request is rejected and the token is
// handed back.
func (t *Throttle) reserve(key string) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if now.After(t.nextSweep) {
		for k, b := range t.buckets {
			if now.Sub(b.used) > sweepEvery {
				delete(t.buckets, k)
			}
		}
		t.nextSweep = now.Add(sweepEvery)
	}

	b, ok := t.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.buckets[key] = b
	}
	b.used = now

	res := b.limiter.ReserveN(now, 1)
	if !res.OK() {
		return sweepEvery
	}
	wait := res.DelayFrom(now)
	if wait > 0 {
		res.CancelAt(now)
	}
	return wait
}

// Middleware answers over-budget clients with a JSON 429 and Retry-After.
func (t *Throttle) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wait := t.reserve(clientKey(r.RemoteAddr)); wait > 0 {
			secs := int(math.Ceil(wait.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			WriteJSON(w, http.StatusTooManyRequests, ErrorResponse{Error: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
