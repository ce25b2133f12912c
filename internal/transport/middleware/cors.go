package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/authority-backend/internal/config"
)

// exposedHeaders are readable by browser clients: Location of a created
// authority and the request ID for support reports.
var exposedHeaders = strings.Join([]string{"Location", RequestIDHeader}, ", ")

// CORS returns middleware that handles Cross-Origin Resource Sharing for
// the REST API. Allowed origins are matched exactly or by "*"; the
// matching origin is echoed back. OPTIONS requests are answered directly.
func CORS(cfg config.CORSConfig) Middleware {
	origins := config.ParseList(cfg.AllowedOrigins)
	anyOrigin := slices.Contains(origins, "*")
	methods := strings.Join(config.ParseList(cfg.AllowedMethods), ",")
	headers := strings.Join(config.ParseList(cfg.AllowedHeaders), ",")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && (anyOrigin || slices.Contains(origins, origin)) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", methods)
				h.Set("Access-Control-Allow-Headers", headers)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
