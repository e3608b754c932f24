package i18n

import (
	"net/http"
	"strings"
)

// LangExtractor determines the preferred language of a request.
// An empty result means "unknown".
type LangExtractor func(r *http.Request) string

// maxLangCodeLength is the maximum allowed length for a language code (RFC 5646).
const maxLangCodeLength = 35

// ExtractorConfig holds configuration for the language extractor
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie name to check for language preference
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter name to check for language
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages restricts detected languages to langs.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order: the "lang" cookie, the "lang" query
// parameter and the Accept-Language header. With supported languages set,
// every candidate is matched against them (de-AT resolves to de); without,
// explicit cookie and query values are returned lowercased and the header's
// first entry is used.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var matcher *Matcher
	if len(cfg.SupportedLangs) > 0 {
		matcher = NewMatcher(cfg.SupportedLangs...)
	}

	explicit := func(lang string) string {
		lang = strings.TrimSpace(lang)
		if lang == "" || len(lang) > maxLangCodeLength {
			return ""
		}
		if matcher == nil {
			return strings.ToLower(lang)
		}
		return matcher.Match(lang)
	}

	return func(r *http.Request) string {
		if cfg.CookieName != "" {
			if c, err := r.Cookie(cfg.CookieName); err == nil {
				if lang := explicit(c.Value); lang != "" {
					return lang
				}
			}
		}

		if cfg.QueryParamName != "" && r.URL != nil {
			if lang := explicit(r.URL.Query().Get(cfg.QueryParamName)); lang != "" {
				return lang
			}
		}

		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		if matcher != nil {
			return matcher.MatchAcceptLanguage(header)
		}
		first, _, _ := strings.Cut(header, ",")
		first, _, _ = strings.Cut(first, ";")
		return explicit(first)
	}
}
