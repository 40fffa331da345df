package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RequestObserver records handled requests
type RequestObserver interface {
	ObserveRequest(method, route string, status int)
}

// MetricsMiddleware reports every request labelled by its chi route pattern.
// Unmatched requests are reported under "unmatched" to keep label cardinality bounded.
func MetricsMiddleware(observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := wrapResponseWriter(w)

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			observer.ObserveRequest(r.Method, route, ww.statusCode)
		})
	}
}
