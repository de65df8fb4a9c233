package middleware

import (
	"net/http"

	"github.com/greethub/greeting-service/internal/ratelimiter"
)

// Throttle holds each request until the limiter grants a token.
// Requests above the configured rate are delayed, never rejected, so a
// burst of identical requests still yields identical responses.
// If the client goes away while waiting, the request is abandoned.
func Throttle(limiter *ratelimiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := limiter.Wait(r.Context()); err != nil {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
