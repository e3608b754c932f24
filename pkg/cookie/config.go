package cookie

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds cookie attribute configuration.
// It is meant to be embedded with an env prefix, e.g. `envPrefix:"CONSENT_COOKIE_"`.
type Config struct {
	Path     string `env:"PATH" envDefault:"/" yaml:"path"`
	Domain   string `env:"DOMAIN" envDefault:"" yaml:"domain"`
	Secure   bool   `env:"SECURE" envDefault:"false" yaml:"secure"`
	HttpOnly bool   `env:"HTTP_ONLY" envDefault:"true" yaml:"http_only"`
	SameSite string `env:"SAME_SITE" envDefault:"lax" yaml:"same_site"`
}

// DefaultConfig returns default cookie configuration
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		HttpOnly: true,
		SameSite: "lax",
	}
}

// Validate checks that SameSite is a known mode.
func (c Config) Validate() error {
	_, err := ParseSameSite(c.SameSite)
	return err
}

// Options converts the config into cookie options.
// Every attribute is applied explicitly so that false values override defaults.
func (c Config) Options() ([]Option, error) {
	sameSite, err := ParseSameSite(c.SameSite)
	if err != nil {
		return nil, err
	}

	path := c.Path
	if path == "" {
		path = "/"
	}

	return []Option{
		WithPath(path),
		WithDomain(c.Domain),
		WithSecure(c.Secure),
		WithHTTPOnly(c.HttpOnly),
		WithSameSite(sameSite),
	}, nil
}

// ParseSameSite maps "lax", "strict", "none" and "default" (case-insensitive) to http.SameSite.
// An empty string is treated as "lax".
func ParseSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	case "default":
		return http.SameSiteDefaultMode, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSameSite, s)
	}
}
