package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/api-sage/banking-transaction-api/src/internal/logger"
)

type RateLimiter interface {
	Allow(callerID string) error
}

// RateLimit gates admission per caller identity: the X-API-Key header
// when present, the remote host otherwise. The limiter itself never
// sees transport details, only the derived identity string.
func RateLimit(limiter RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := limiter.Allow(callerIdentity(r)); err != nil {
				logger.Warn("rate limit middleware rejected request", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				http.Error(w, "Rate limit exceeded. Try again later.", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func callerIdentity(r *http.Request) string {
	if key := strings.TrimSpace(r.Header.Get("X-API-Key")); key != "" {
		return key
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
