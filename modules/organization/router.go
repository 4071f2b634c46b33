package organization

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
)

// RouterOptions configures the organization module's internal router.
type RouterOptions struct {
	Store Storage
	Cache Cache

	// Secret guards the internal endpoints. When empty the legacy
	// X-Internal-Call header is accepted instead.
	Secret string

	Logger *slog.Logger
}

// Router creates the internal organization router. Mount it under the
// internal prefix the edge middleware skips:
//
//	r := chi.NewRouter()
//	r.Mount("/internal", organization.Router(organization.RouterOptions{
//	    Store:  store,
//	    Cache:  cache,
//	    Secret: cfg.InternalAPISecret,
//	    Logger: log,
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(InternalAuth(opts.Secret, opts.Logger))
	r.Get("/tenant/resolve", ResolveHandler(opts.Store, opts.Cache, opts.Logger))

	return r
}
