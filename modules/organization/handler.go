package organization

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/saasbase/saasbase/pkg/hostname"
	"github.com/saasbase/saasbase/pkg/logger"
	"github.com/saasbase/saasbase/pkg/tenant"
)

// ResolveHandler serves the internal tenant-resolution endpoint. It accepts
// slug or hostname query parameters, consults the cache, falls back to the
// store, and returns the public tenant payload. Inactive and unknown tenants
// both answer 404 with a generic body.
func ResolveHandler(store Storage, cache Cache, log *slog.Logger) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		slugParam := r.URL.Query().Get("slug")
		hostParam := r.URL.Query().Get("hostname")

		if slugParam == "" && hostParam == "" {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		if slugParam != "" && !tenant.IsValidSlug(slugParam) {
			log.WarnContext(r.Context(), "resolve rejected: invalid slug", logger.Slug(slugParam))
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		if hostParam != "" {
			normalized, err := hostname.Normalize(hostParam)
			if err != nil {
				log.WarnContext(r.Context(), "resolve rejected: invalid hostname",
					logger.Host(hostParam), logger.Error(err))
				http.Error(w, "Bad Request", http.StatusBadRequest)
				return
			}
			hostParam = normalized
		}

		key := CacheKey(slugParam, hostParam)
		if cache != nil {
			if info, ok := cache.Get(r.Context(), key); ok {
				writeTenant(w, info)
				return
			}
		}

		org, err := store.FindForResolve(r.Context(), slugParam, hostParam)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "Not Found", http.StatusNotFound)
				return
			}
			log.ErrorContext(r.Context(), "resolve lookup failed",
				logger.Slug(slugParam), logger.Host(hostParam), logger.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if !org.Active {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}

		info := org.TenantInfo()
		if cache != nil {
			cache.Set(r.Context(), key, info)
		}
		writeTenant(w, info)
	}
}

func writeTenant(w http.ResponseWriter, info *tenant.TenantInfo) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(info)
}

// InternalAuth guards internal endpoints. When a secret is configured the
// caller must present it in the X-Internal-Secret header; comparison is
// constant time. Without a configured secret the legacy X-Internal-Call
// marker is accepted instead so older callers keep working during rollout.
func InternalAuth(secret string, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret != "" {
				got := r.Header.Get(tenant.HeaderInternalSecret)
				if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) == 1 {
					next.ServeHTTP(w, r)
					return
				}
			} else if r.Header.Get(tenant.HeaderInternalCall) == tenant.InternalCallValue {
				next.ServeHTTP(w, r)
				return
			}

			log.WarnContext(r.Context(), "internal call rejected: missing or invalid credentials")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		})
	}
}
