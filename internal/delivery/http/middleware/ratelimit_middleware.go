package middleware

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"

	"orthocare-api/internal/infrastructure/ratelimit"
	"orthocare-api/pkg/response"

	"github.com/sirupsen/logrus"
)

// RateLimitMiddleware throttles requests per client IP.
type RateLimitMiddleware struct {
	store   ratelimit.Store
	proxies []netip.Prefix
	log     *logrus.Logger
}

// NewRateLimitMiddleware keys requests by ClientIP; X-Forwarded-For is only
// read when the connection comes from one of trustedProxies.
func NewRateLimitMiddleware(store ratelimit.Store, trustedProxies []netip.Prefix, log *logrus.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		store:   store,
		proxies: trustedProxies,
		log:     log,
	}
}

func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, retryAfter, err := m.store.Allow(r.Context(), ClientIP(r, m.proxies))
		if err != nil {
			// Fail open: a broken limiter store must not take the API down.
			m.log.Warnf("Failed to check rate limit: %+v", err)
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			response.Error(w, http.StatusTooManyRequests, fmt.Sprintf("Too many requests. Try again in %d seconds.", seconds))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClientIP returns the connection's peer address unless that peer is a
// trusted proxy. Then X-Forwarded-For is walked right to left and the first
// hop that is not itself a trusted proxy wins.
func ClientIP(r *http.Request, trustedProxies []netip.Prefix) string {
	peer := remoteHost(r)
	if !trusted(peer, trustedProxies) {
		return peer
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !trusted(hop, trustedProxies) {
			return hop
		}
		peer = hop
	}
	return peer
}

func remoteHost(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func trusted(ip string, proxies []netip.Prefix) bool {
	if len(proxies) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range proxies {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
