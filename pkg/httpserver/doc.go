// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown.
//
// Run blocks until the context is cancelled, SIGINT or SIGTERM arrives, or
// Shutdown is called, then gives in-flight requests ShutdownTimeout to
// finish. Listen failures are wrapped with ErrStart.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg, config.WithPrefix("CONSENT_"))
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
