package tenant

import (
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/saasbase/saasbase/pkg/clientip"
	"github.com/saasbase/saasbase/pkg/hostname"
	"github.com/saasbase/saasbase/pkg/logger"
)

// ScopedPathPrefix is the route namespace tenant requests are rewritten into.
const ScopedPathPrefix = "/s/"

// Middleware returns the tenant gate: per-request middleware that validates
// the host header, resolves it to a tenant, and either passes the request
// through, rewrites its path into the tenant-scoped namespace, or terminates
// it with a generic 400/404.
//
// The gate is stateless and safe for concurrent use; the only blocking
// operation is the resolver call, which carries its own deadline.
func Middleware(rootDomain string, resolver Resolver, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		log:           slog.New(slog.DiscardHandler),
		skipPrefixes:  []string{"/internal/", "/.well-known/"},
		passPrefixes:  []string{"/api", "/healthz"},
		slowThreshold: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if bypass(r.URL.Path, cfg.skipPrefixes) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ctx := r.Context()

			host, err := hostname.Normalize(r.Host)
			if err != nil {
				// Generic body: the response must not reveal whether the
				// host was malformed or merely unknown.
				if hostname.IsSuspicious(err) {
					cfg.log.WarnContext(ctx, "rejected suspicious host header",
						logger.Error(err), logger.ClientIP(clientip.GetIP(r)))
				} else {
					cfg.log.WarnContext(ctx, "rejected invalid host header",
						logger.Error(err), logger.ClientIP(clientip.GetIP(r)))
				}
				http.Error(w, "Bad Request", http.StatusBadRequest)
				return
			}

			// Root domain serves the main application; no tenant scope.
			if host == rootDomain {
				next.ServeHTTP(w, r)
				return
			}

			var slugCandidate string
			if suffix := "." + rootDomain; strings.HasSuffix(host, suffix) {
				slugCandidate = strings.TrimSuffix(host, suffix)
				// Fail fast on obviously-invalid or reserved slugs: no point
				// spending a network round trip on them.
				if !IsValidSlug(slugCandidate) {
					cfg.log.WarnContext(ctx, "subdomain is not a valid tenant slug",
						logger.Host(host), logger.Slug(slugCandidate))
					http.Error(w, "Not Found", http.StatusNotFound)
					return
				}
			}

			info, err := resolver.Resolve(ctx, host, slugCandidate)
			if err != nil || info == nil {
				// The resolver logged the cause; the response stays generic
				// either way so tenant existence cannot be probed.
				http.Error(w, "Not Found", http.StatusNotFound)
				return
			}

			r = r.WithContext(WithTenant(ctx, info))
			r.Header.Set(HeaderTenantID, info.ID)
			r.Header.Set(HeaderTenantSlug, info.Slug)
			r.Header.Set(HeaderTenantDomain, info.Domain(host))
			r.Header.Set(HeaderTenantTimestamp, strconv.FormatInt(time.Now().UnixMilli(), 10))
			r.Header.Set(HeaderMiddlewareStart, strconv.FormatInt(start.UnixMilli(), 10))

			if !scoped(r.URL.Path, info.Slug) && !passthrough(r.URL.Path, cfg.passPrefixes) {
				prefix := ScopedPathPrefix + info.Slug
				r.URL.Path = prefix + r.URL.Path
				if r.URL.RawPath != "" {
					r.URL.RawPath = prefix + r.URL.RawPath
				}
			}

			if elapsed := time.Since(start); elapsed > cfg.slowThreshold {
				cfg.log.WarnContext(r.Context(), "tenant gate exceeded latency budget",
					logger.Host(host), logger.Duration(elapsed))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bypass reports whether the gate should ignore the path entirely: internal
// and well-known prefixes, plus anything that looks like a static asset.
func bypass(p string, skipPrefixes []string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return path.Ext(p) != ""
}

// scoped reports whether the path already lives under the tenant's namespace.
func scoped(p, slug string) bool {
	prefix := ScopedPathPrefix + slug
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

func passthrough(p string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}
