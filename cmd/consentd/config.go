package main

import (
	"errors"

	"github.com/dmitrymomot/consentkit/pkg/config"
	"github.com/dmitrymomot/consentkit/pkg/consent"
	"github.com/dmitrymomot/consentkit/pkg/httpserver"
)

const envPrefix = "CONSENT_"

// appConfig holds the process-level settings; consent and HTTP settings
// live in their own packages and share the CONSENT_ prefix.
type appConfig struct {
	Env              string   `env:"ENV" envDefault:"development"`
	AppLogLevel      string   `env:"APP_LOG_LEVEL"`
	AsyncLogBuffer   int      `env:"ASYNC_LOG_BUFFER" envDefault:"1024"`
	Languages        []string `env:"LANGUAGES" envSeparator:","`
	DefaultLanguage  string   `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	MetricsNamespace string   `env:"METRICS_NAMESPACE" envDefault:"consentd"`
	MountPath        string   `env:"MOUNT_PATH" envDefault:"/consent"`
}

type settings struct {
	App     appConfig
	Consent consent.Config
	HTTP    httpserver.Config
}

func loadSettings(opts ...config.Option) (settings, error) {
	opts = append([]config.Option{config.WithPrefix(envPrefix)}, opts...)

	var s settings
	if err := config.Load(&s.App, opts...); err != nil {
		return s, err
	}
	if err := config.Load(&s.Consent, opts...); err != nil {
		return s, err
	}
	if err := config.Load(&s.HTTP, opts...); err != nil {
		return s, err
	}
	if err := s.Consent.ResolveCategories(); err != nil {
		return s, err
	}
	if err := s.Consent.Validate(); err != nil {
		return s, errors.Join(errors.New("invalid consent configuration"), err)
	}
	return s, nil
}
