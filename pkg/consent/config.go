package consent

import (
	"fmt"

	"github.com/dmitrymomot/consentkit/pkg/cookie"
	"github.com/dmitrymomot/consentkit/pkg/validator"
)

const (
	DefaultCookieLifetime    = 365 * 24 * 60 * 60
	DefaultVersion           = "1.0"
	DefaultLogLevel          = "info"
	DefaultTranslationDomain = "cookie_consent"
)

// Config holds consent engine configuration.
// Scalar fields are parsed from environment variables, usually with the
// "CONSENT_" prefix. Categories come from code or from CategoriesFile.
//
// Secure and HttpOnly default to false so the cookie can be set over plain
// HTTP and read by client-side scripts.
type Config struct {
	CookieLifetime    int        `env:"COOKIE_LIFETIME" envDefault:"31536000"`
	CategoriesFile    string     `env:"CATEGORIES_FILE"`
	Categories        []Category `env:"-"`
	TranslationDomain string     `env:"TRANSLATION_DOMAIN" envDefault:"cookie_consent"`
	UseTranslations   bool       `env:"USE_TRANSLATIONS" envDefault:"false"`
	EnableLogging     bool       `env:"ENABLE_LOGGING" envDefault:"true"`
	LogLevel          string     `env:"LOG_LEVEL" envDefault:"info"`
	Version           string     `env:"VERSION" envDefault:"1.0"`

	CookiePath     string `env:"COOKIE_PATH" envDefault:"/"`
	CookieDomain   string `env:"COOKIE_DOMAIN" envDefault:""`
	CookieSecure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	CookieHTTPOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"false"`
	CookieSameSite string `env:"COOKIE_SAME_SITE" envDefault:"lax"`
}

// DefaultConfig returns the default configuration with DefaultCategories.
func DefaultConfig() Config {
	return Config{
		CookieLifetime:    DefaultCookieLifetime,
		Categories:        DefaultCategories(),
		TranslationDomain: DefaultTranslationDomain,
		EnableLogging:     true,
		LogLevel:          DefaultLogLevel,
		Version:           DefaultVersion,
		CookiePath:        "/",
		CookieSameSite:    "lax",
	}
}

// ResolveCategories fills Categories from CategoriesFile when it is set, or
// with DefaultCategories when no categories are configured at all.
func (c *Config) ResolveCategories() error {
	if c.CategoriesFile != "" {
		cats, err := LoadCategoriesFile(c.CategoriesFile)
		if err != nil {
			return err
		}
		c.Categories = cats
		return nil
	}
	if len(c.Categories) == 0 {
		c.Categories = DefaultCategories()
	}
	return nil
}

// Validate reports every configuration problem at once. The result is a
// validator.ValidationErrors whose entries match ErrInvalidLifetime,
// ErrNoCategories, ErrInvalidCategory or ErrInvalidCookie with errors.Is.
func (c Config) Validate() error {
	rules := []validator.Rule{
		validator.MinNum("cookie_lifetime", c.CookieLifetime, 1).WithErr(ErrInvalidLifetime),
		validator.RequiredSlice("categories", c.Categories).WithErr(ErrNoCategories),
	}

	reserved := []string{KeyTimestamp, KeyVersion}
	seen := make(map[string]struct{}, len(c.Categories))
	for i, cat := range c.Categories {
		field := fmt.Sprintf("categories[%d]", i)
		if cat.Key == "" {
			rules = append(rules, validator.RequiredString(field+".key", cat.Key).WithErr(ErrInvalidCategory))
			continue
		}

		_, dup := seen[cat.Key]
		seen[cat.Key] = struct{}{}
		rules = append(rules,
			validator.NotInListString(field+".key", cat.Key, reserved).WithErr(ErrInvalidCategory),
			validator.Custom(field+".key", fmt.Sprintf("duplicate key %q", cat.Key), func() bool { return !dup }).WithErr(ErrInvalidCategory),
			validator.RequiredString(field+".name", cat.Name).WithErr(ErrInvalidCategory),
			validator.RequiredString(field+".description", cat.Description).WithErr(ErrInvalidCategory),
		)
	}

	cookieErr := c.cookieConfig().Validate()
	msg := ""
	if cookieErr != nil {
		msg = cookieErr.Error()
	}
	rules = append(rules,
		validator.Custom("cookie", msg, func() bool { return cookieErr == nil }).WithErr(ErrInvalidCookie),
	)

	return validator.Apply(rules...)
}

func (c Config) cookieConfig() cookie.Config {
	return cookie.Config{
		Path:     c.CookiePath,
		Domain:   c.CookieDomain,
		Secure:   c.CookieSecure,
		HttpOnly: c.CookieHTTPOnly,
		SameSite: c.CookieSameSite,
	}
}

// withDefaults fills empty textual settings. Numeric and boolean fields are left alone.
func (c Config) withDefaults() Config {
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.TranslationDomain == "" {
		c.TranslationDomain = DefaultTranslationDomain
	}
	if c.CookiePath == "" {
		c.CookiePath = "/"
	}
	return c
}
