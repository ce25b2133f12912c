package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/authority-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Normalize *NormalizeHandler
	Authority *AuthorityHandler
	Admin     *AdminHandler
}

// RouterOptions configures the per-route middleware of NewRouter.
type RouterOptions struct {
	// Global wraps every route, outermost first.
	Global []middleware.Middleware
	// NormalizeLimit throttles POST /normalize; nil disables throttling.
	NormalizeLimit middleware.Middleware
}

// NewRouter mounts all REST endpoints. Reads are public, writes need an
// authenticated caller and /admin needs the admin role.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(opts.Global...))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Chain(opts.NormalizeLimit))
		r.Post("/normalize", h.Normalize.Normalize)
	})

	r.Route("/authorities", func(r chi.Router) {
		r.Get("/", h.Authority.List)
		r.Get("/equivalents", h.Authority.Equivalents)
		r.Get("/{id}", h.Authority.Get)
		r.Get("/{id}/references", h.Authority.ListReferences)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/", h.Authority.Create)
			r.Patch("/{id}", h.Authority.Rename)
			r.Post("/{id}/references", h.Authority.AddReference)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/duplicates", h.Admin.Duplicates)
		r.Post("/merge", h.Admin.Merge)
		r.Post("/recompute-keys", h.Admin.RecomputeKeys)
		r.Get("/merges", h.Admin.Merges)
		r.Get("/stats", h.Admin.Stats)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
