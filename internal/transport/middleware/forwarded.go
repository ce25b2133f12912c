package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/authority-backend/internal/config"
	"github.com/heartmarshall/authority-backend/pkg/ctxutil"
)

// Headers set by a front-end reverse proxy.
const (
	headerForwardedProto  = "X-Forwarded-Proto"
	headerForwardedHost   = "X-Forwarded-Host"
	headerForwardedFor    = "X-Forwarded-For"
	headerForwardedPrefix = "X-Forwarded-Prefix"
)

// ForwardedHeaders adapts the request to what the client actually sent
// through a reverse proxy and stores the external base URL in the context.
//
// Forwarded headers are honoured only when cfg.TrustForwardedHeaders is set
// and the immediate peer is a trusted proxy. A configured cfg.BaseURL always
// wins over anything derived from the request.
func ForwardedHeaders(cfg config.ProxyConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r = r.WithContext(r.Context())

			scheme := "http"
			if r.TLS != nil {
				scheme = "https"
			}
			var prefix string

			if cfg.TrustForwardedHeaders && cfg.IsTrustedProxy(clientIP(r)) {
				switch proto := strings.ToLower(firstValue(r.Header.Get(headerForwardedProto))); proto {
				case "http", "https":
					scheme = proto
				}
				if host := firstValue(r.Header.Get(headerForwardedHost)); host != "" {
					r.Host = host
				}
				if ip := firstValue(r.Header.Get(headerForwardedFor)); net.ParseIP(ip) != nil {
					r.RemoteAddr = ip
				}
				prefix = cleanPrefix(r.Header.Get(headerForwardedPrefix))
			}

			base := cfg.BaseURL
			if base == "" {
				base = scheme + "://" + r.Host + prefix
			}

			ctx := ctxutil.WithBaseURL(r.Context(), base)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// firstValue returns the first entry of a comma-separated header value.
func firstValue(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

// cleanPrefix returns the prefix with one leading and no trailing slash,
// or "" for an empty or root prefix.
func cleanPrefix(p string) string {
	p = strings.Trim(firstValue(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
