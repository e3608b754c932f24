// Command consentd serves the cookie-consent banner API.
//
// Configuration comes from CONSENT_* environment variables and an optional
// .env file; see consent.Config, httpserver.Config and appConfig.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/consentkit/pkg/httpserver"
	"github.com/dmitrymomot/consentkit/pkg/logger"
	"github.com/dmitrymomot/consentkit/pkg/requestid"
)

func main() {
	os.Exit(run())
}

func run() int {
	s, err := loadSettings()
	if err != nil {
		slog.Error("failed to load configuration", logger.Error(err))
		return 1
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(s.App.Env, "consentd"),
		logger.WithContextExtractors(requestid.LoggerExtractor),
		logger.WithAsync(logger.AsyncOptions{BufferSize: s.App.AsyncLogBuffer}),
	}
	if s.App.AppLogLevel != "" {
		logOpts = append(logOpts, logger.WithLevelName(s.App.AppLogLevel))
	}
	log, closeLog := logger.NewWithCloser(logOpts...)
	logger.SetAsDefault(log)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = closeLog(ctx)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := newRouter(ctx, s, log, newRegistry())
	if err != nil {
		log.Error("failed to initialize", logger.Error(err))
		return 1
	}

	log.Info("starting consentd",
		slog.String("addr", s.HTTP.Addr),
		slog.Int("categories", len(s.Consent.Categories)),
		slog.String("version", s.Consent.Version),
	)

	srv := httpserver.NewFromConfig(s.HTTP, httpserver.WithLogger(log), httpserver.WithoutSignalHandling())
	if err := srv.Run(ctx, router); err != nil {
		log.Error("server failed", logger.Error(err))
		return 1
	}
	return 0
}
