// Package httpserver wraps net/http's Server with graceful shutdown, signal
// handling, and structured lifecycle logging, plus a composable health-check
// handler for liveness and readiness probes.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server exited", logger.Error(err))
//	}
package httpserver
