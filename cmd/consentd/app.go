package main

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/consentkit/pkg/banner"
	"github.com/dmitrymomot/consentkit/pkg/clientip"
	"github.com/dmitrymomot/consentkit/pkg/consent"
	"github.com/dmitrymomot/consentkit/pkg/cookie"
	"github.com/dmitrymomot/consentkit/pkg/httpserver"
	"github.com/dmitrymomot/consentkit/pkg/i18n"
	"github.com/dmitrymomot/consentkit/pkg/metrics"
	"github.com/dmitrymomot/consentkit/pkg/requestid"
)

//go:embed locales/*.yaml
var locales embed.FS

// newTranslator loads the bundled catalogs.
func newTranslator(ctx context.Context, s settings, log *slog.Logger) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales"),
		i18n.WithDefaultLanguage(s.App.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(s.App.Env != "production"),
	)
}

// languages returns the configured languages, or every bundled one.
func languages(s settings, tr *i18n.Translator) []string {
	if len(s.App.Languages) == 0 {
		return tr.SupportedLanguages()
	}
	out := make([]string, 0, len(s.App.Languages))
	for _, lang := range s.App.Languages {
		if lang != "" && !slices.Contains(out, lang) {
			out = append(out, lang)
		}
	}
	return out
}

// newRouter wires one consent service per language behind the banner routes.
func newRouter(ctx context.Context, s settings, log *slog.Logger, reg *prometheus.Registry) (http.Handler, error) {
	tr, err := newTranslator(ctx, s, log)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	rec := metrics.NewConsent(reg, s.App.MetricsNamespace, consent.NewCategories(s.Consent.Categories).Keys())

	langs := languages(s, tr)
	services := make(map[string]*consent.Service, len(langs))
	for _, lang := range langs {
		svc, err := consent.New(s.Consent,
			consent.WithLogger(log),
			consent.WithRecorder(rec),
			consent.WithTranslator(tr.ForLanguage(lang)),
		)
		if err != nil {
			return nil, fmt.Errorf("consent service %q: %w", lang, err)
		}
		services[lang] = svc
	}

	def, ok := services[tr.DefaultLanguage()]
	if !ok {
		def, err = consent.New(s.Consent,
			consent.WithLogger(log),
			consent.WithRecorder(rec),
			consent.WithTranslator(tr.ForLanguage(tr.DefaultLanguage())),
		)
		if err != nil {
			return nil, fmt.Errorf("consent service: %w", err)
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(langs...))))
	r.Use(cookie.Middleware)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, func(context.Context) error {
		if len(tr.SupportedLanguages()) == 0 {
			return i18n.ErrNoTranslationFiles
		}
		return nil
	}))
	r.Handle("/metrics", metrics.Handler(reg))
	r.Mount(s.App.MountPath, banner.New(def,
		banner.WithLogger(log),
		banner.WithLocalizedServices(services),
	).Routes())

	return r, nil
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
