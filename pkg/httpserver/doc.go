// Package httpserver provides a thin wrapper around net/http adding graceful
// shutdown, configurable timeouts, structured logging via slog and a
// health-check handler.
//
// Run blocks until its context is cancelled (wire it to
// signal.NotifyContext for SIGINT/SIGTERM handling) or Shutdown is called,
// then drains in-flight requests within the shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Run wraps listen errors with ErrStart, Shutdown wraps drain errors with
// ErrShutdown.
package httpserver
