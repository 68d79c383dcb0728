// Package httpserver runs an http.Handler with graceful shutdown and exposes
// liveness and readiness handlers.
//
// Run binds the listener first, so a bad address fails immediately with
// ErrStart. It then serves until the context is cancelled, SIGINT or SIGTERM
// arrives, or Shutdown is called, and drains in-flight requests within the
// shutdown timeout.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.LivenessHandler())
//	r.Get("/readyz", httpserver.ReadinessHandler(log, 2*time.Second,
//		httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)},
//	))
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Run wraps listen errors with ErrStart and Shutdown wraps drain errors with
// ErrShutdown. Use errors.Is to distinguish them.
package httpserver
