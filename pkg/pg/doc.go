// Package pg bootstraps the PostgreSQL layer: a pgx/v5 connection pool with
// startup retry, goose schema migrations, a health check, and error helpers
// for classifying common SQLSTATE failures.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil { ... }
//
// The helpers are deliberately decoupled so callers can wire them into any
// lifecycle framework.
package pg
