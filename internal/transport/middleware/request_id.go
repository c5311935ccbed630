package middleware

import (
	"net/http"

	"github.com/heartmarshall/feedback-insights/pkg/ctxutil"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// RequestID reuses the incoming X-Request-Id or generates a new one, stores
// it in the request context and echoes it in the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				ctx, id = ctxutil.WithNewRequestID(ctx)
			} else {
				ctx = ctxutil.WithRequestID(ctx, id)
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
