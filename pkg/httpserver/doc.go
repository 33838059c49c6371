// Package httpserver wraps net/http with graceful shutdown, functional
// options and health-check handlers.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled or SIGINT/SIGTERM arrives, then calls
// Shutdown with the configured deadline. Errors wrap ErrStart or ErrShutdown.
package httpserver
