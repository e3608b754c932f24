// Package i18n provides message catalogs, language negotiation and an HTTP
// middleware that stores the request language in the context.
//
// Catalogs are nested maps keyed by language code, loaded through a
// TranslationAdapter (MapAdapter for in-memory data, FSAdapter for a
// directory of YAML or JSON files in any fs.FS, including embed.FS):
//
//	en:
//	  cookie_consent:
//	    categories:
//	      necessary:
//	        name: Necessary
//
// Keys are dot-separated paths. A lookup tries the requested language, its
// base language and finally the default language.
//
// # Translation domains
//
// ForLanguage returns a Localizer whose Translate(ref, domain) looks up
// "<domain>.<ref>" and returns ref unchanged when nothing is found. It
// satisfies consent.Translator:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales"))
//	if err != nil {
//	    return err
//	}
//	svc, err := consent.New(cfg, consent.WithTranslator(tr.ForLanguage("de")))
//
// # Language detection
//
// Middleware runs a LangExtractor (DefaultLangExtractor checks a cookie, a
// query parameter and Accept-Language) and stores the result with SetLocale.
// Negotiation uses golang.org/x/text/language, so "de-AT" matches a
// supported "de".
package i18n
