package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/feedback-insights/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing for
// the browser frontends listed in cfg.AllowedOrigins. A preflight request
// (OPTIONS with Access-Control-Request-Method) is answered with 204 and
// never reaches the handler.
func CORS(cfg config.CORSConfig) Middleware {
	origins := splitList(cfg.AllowedOrigins)
	methods := cfg.AllowedMethods
	headers := cfg.AllowedHeaders
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := origin != "" && isAllowedOrigin(origin, origins)
			if allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
				w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowed {
					w.Header().Set("Access-Control-Allow-Methods", methods)
					w.Header().Set("Access-Control-Allow-Headers", headers)
					w.Header().Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func isAllowedOrigin(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
