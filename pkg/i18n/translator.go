package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// Translator resolves dot-separated message keys against loaded catalogs.
// It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator loads translations through adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:     adapter,
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload fetches translations from the adapter again and swaps them in.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	normalized := make(map[string]map[string]any, len(translations))
	for lang, tree := range translations {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if tree == nil {
			tree = map[string]any{}
		}
		normalized[strings.ToLower(lang)] = tree
	}

	t.mu.Lock()
	t.translations = normalized
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return nil
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// HasTranslation reports whether lang itself defines key. No fallback is applied.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tree, ok := t.translations[strings.ToLower(lang)]
	if !ok {
		return false
	}
	_, ok = lookupString(tree, key)
	return ok
}

// lookup finds key for lang, then for its base language (de-at -> de), then
// for the default language.
func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, candidate := range t.candidates(lang) {
		tree, ok := t.translations[candidate]
		if !ok {
			continue
		}
		if msg, ok := lookupString(tree, key); ok {
			return msg, true
		}
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return "", false
}

func (t *Translator) candidates(lang string) []string {
	lang = strings.ToLower(lang)
	out := make([]string, 0, 3)
	if lang != "" {
		out = append(out, lang)
		if i := strings.IndexAny(lang, "-_"); i > 0 {
			out = append(out, lang[:i])
		}
	}
	if !slices.Contains(out, t.defaultLang) {
		out = append(out, t.defaultLang)
	}
	return out
}

// T translates key for lang. Arguments are key-value pairs substituted into
// "%{name}" placeholders. A missing translation returns the key itself.
//
//	translator.T("en", "cookie_consent.banner.title")
//	translator.T("en", "greeting", "name", "Ann") // "Hello, %{name}!" -> "Hello, Ann!"
func (t *Translator) T(lang, key string, args ...string) string {
	return t.Td(lang, key, key, args...)
}

// Td is like T with an explicit fallback.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	msg, ok := t.lookup(lang, key)
	if !ok {
		msg = defaultValue
	}
	return sprintf(msg, args)
}

// Tc translates key in the language stored in ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// ForLanguage returns a translator bound to lang that resolves display
// references within translation domains.
func (t *Translator) ForLanguage(lang string) *Localizer {
	return &Localizer{t: t, lang: strings.ToLower(lang)}
}

// Localizer is a Translator bound to one language.
type Localizer struct {
	t    *Translator
	lang string
}

func (l *Localizer) Language() string {
	return l.lang
}

// Translate resolves ref inside domain: the catalog key is "<domain>.<ref>".
// It returns ref unchanged when no translation exists.
func (l *Localizer) Translate(ref, domain string) string {
	key := ref
	if domain != "" {
		key = domain + "." + ref
	}
	if msg, ok := l.t.lookup(l.lang, key); ok {
		return msg
	}
	return ref
}

// lookupString walks a nested catalog along a dot-separated key.
// Only string leaves count as translations.
func lookupString(tree map[string]any, key string) (string, bool) {
	if key == "" {
		return "", false
	}

	var current any = tree
	for part := range strings.SplitSeq(key, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[part]
			if !ok {
				return "", false
			}
			current = next
		case map[any]any:
			next, ok := node[part]
			if !ok {
				return "", false
			}
			current = next
		default:
			return "", false
		}
	}

	switch v := current.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes "%{name}" placeholders from key-value pairs. Unknown
// placeholders are left as they are; an odd trailing argument is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
