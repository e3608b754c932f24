package i18n

import (
	"context"
	"net/http"
)

type localeKey struct{}

// SetLocale returns a copy of ctx carrying lang.
func SetLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeKey{}, lang)
}

// GetLocale returns the language stored by Middleware or SetLocale, or
// DefaultLanguage when there is none.
func GetLocale(ctx context.Context) string {
	if ctx == nil {
		return DefaultLanguage
	}
	if lang, _ := ctx.Value(localeKey{}).(string); lang != "" {
		return lang
	}
	return DefaultLanguage
}

// Middleware stores the language found by extr in the request context.
// A nil extractor means DefaultLangExtractor().
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), extr(r))))
		})
	}
}
