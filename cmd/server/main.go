package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/saasbase/saasbase/modules/organization"
	"github.com/saasbase/saasbase/pkg/config"
	"github.com/saasbase/saasbase/pkg/httpserver"
	"github.com/saasbase/saasbase/pkg/logger"
	"github.com/saasbase/saasbase/pkg/pg"
	"github.com/saasbase/saasbase/pkg/redis"
	"github.com/saasbase/saasbase/pkg/tenant"
)

type appConfig struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	Tenant tenant.Config
	HTTP   httpserver.Config
	PG     pg.Config
	Redis  redis.Config
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "saasbase"),
		logger.WithContextExtractors(tenant.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	rootDomain, err := cfg.Tenant.RootDomain()
	if err != nil {
		return fmt.Errorf("root domain: %w", err)
	}
	log.InfoContext(ctx, "starting server",
		slog.String("env", cfg.Env),
		slog.String("root_domain", rootDomain),
	)

	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	store := organization.NewStore(pool)

	checks := []func(context.Context) error{pg.Healthcheck(pool)}
	var orgCache organization.Cache
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer client.Close()
		orgCache = organization.NewRedisCache(client, organization.DefaultCacheTTL)
		checks = append(checks, redis.Healthcheck(client))
		log.InfoContext(ctx, "using shared redis resolve cache")
	} else {
		orgCache = organization.NewMemoryCache(1024, organization.DefaultCacheTTL)
		log.InfoContext(ctx, "redis not configured, using in-process resolve cache")
	}

	resolver := tenant.NewHTTPResolver(cfg.Tenant.EffectiveBaseURL(),
		tenant.WithSecret(cfg.Tenant.InternalAPISecret),
		tenant.WithTimeout(cfg.Tenant.ResolveTimeout()),
		tenant.WithResolverLogger(log),
	)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(tenant.Middleware(rootDomain, resolver, tenant.WithLogger(log)))

	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log, checks...))

	r.Mount("/internal", organization.Router(organization.RouterOptions{
		Store:  store,
		Cache:  orgCache,
		Secret: cfg.Tenant.InternalAPISecret,
		Logger: log,
	}))

	r.Route("/s/{slug}", func(s chi.Router) {
		s.Get("/", tenantHome)
		s.Get("/*", tenantHome)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "saasbase")
	})

	srvOpts := []httpserver.Option{httpserver.WithLogger(log)}
	if cfg.HTTP.Addr == "" {
		srvOpts = append(srvOpts, httpserver.WithAddr(fmt.Sprintf(":%d", cfg.Tenant.Port)))
	}
	srv := httpserver.NewFromConfig(cfg.HTTP, srvOpts...)
	return srv.Run(ctx, r)
}

// tenantHome handles everything under the tenant scope. The gate guarantees
// a tenant is present by the time a request reaches this subtree.
func tenantHome(w http.ResponseWriter, r *http.Request) {
	info := tenant.MustFromContext(r.Context())
	fmt.Fprintf(w, "tenant %s (%s)\n", info.Slug, info.ID)
}
