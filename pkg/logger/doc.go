// Package logger builds configured slog loggers for the application.
//
// It provides environment presets (JSON at info level for production, text at
// debug level for development), static service attributes, and a handler
// decorator that injects request-scoped attributes from context — the tenant
// gate registers an extractor so every record emitted inside a tenant scope
// carries the tenant id automatically.
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "saasbase"),
//	    logger.WithContextExtractors(tenant.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// The attr helpers keep attribute keys consistent across packages; prefer
// logger.Error(err) and friends over ad-hoc slog.Any calls.
package logger
