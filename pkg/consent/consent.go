package consent

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/consentkit/pkg/cookie"
	"github.com/dmitrymomot/consentkit/pkg/logger"
)

// Service is the consent engine. It holds immutable configuration and is
// safe for concurrent use; it never stores consent records itself.
type Service struct {
	cfg        Config
	categories Categories
	level      slog.Level
	cookieOpts []cookie.Option

	translator Translator
	logger     *slog.Logger
	recorder   Recorder
	now        func() time.Time

	localized func() Categories
}

// New validates cfg and builds a Service. An invalid configuration is a
// deployment error and must stop startup.
func New(cfg Config, opts ...Option) (*Service, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cookieOpts, err := cfg.cookieConfig().Options()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}

	// Unknown levels fall back to info.
	level, _ := logger.ParseLevel(cfg.LogLevel)

	s := &Service{
		cfg:        cfg,
		categories: NewCategories(cfg.Categories),
		level:      level,
		cookieOpts: append(cookieOpts, cookie.WithMaxAge(cfg.CookieLifetime)),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.localized = sync.OnceValue(s.translateCategories)

	return s, nil
}

// MustNew is like New but panics on invalid configuration.
func MustNew(cfg Config, opts ...Option) *Service {
	s, err := New(cfg, opts...)
	if err != nil {
		panic(fmt.Sprintf("consent: invalid configuration: %v", err))
	}
	return s
}

// Config returns the effective configuration.
func (s *Service) Config() Config {
	cfg := s.cfg
	cfg.Categories = s.categories.All()
	return cfg
}

// Categories returns the configured categories. With translations enabled
// and a translator attached, names and descriptions are resolved once and
// reused for the lifetime of the Service.
func (s *Service) Categories() Categories {
	if !s.cfg.UseTranslations || s.translator == nil {
		return s.categories
	}
	return s.localized()
}

func (s *Service) translateCategories() Categories {
	list := s.categories.All()
	for i := range list {
		list[i].Name = s.translate(list[i].Name)
		list[i].Description = s.translate(list[i].Description)
	}
	return NewCategories(list)
}

func (s *Service) translate(ref string) string {
	if out := s.translator.Translate(ref, s.cfg.TranslationDomain); out != "" {
		return out
	}
	return ref
}

// HasConsent reports whether the request carries the consent cookie,
// regardless of whether its content parses.
func (s *Service) HasConsent(req Request) bool {
	if req == nil {
		return false
	}
	_, ok := req.Cookie(CookieName)
	return ok
}

// Record decodes the consent cookie of req. It returns an empty record when
// there is no request, no cookie, or the cookie is malformed.
func (s *Service) Record(req Request) Record {
	if req == nil {
		return Decode("")
	}
	raw, _ := req.Cookie(CookieName)
	return Decode(raw)
}

// Preferences returns the boolean choices stored in the consent cookie.
// The result is never nil.
func (s *Service) Preferences(req Request) map[string]bool {
	return s.Record(req).Choices
}

// RawPreferences returns everything stored in the consent cookie, including
// non-boolean entries and the reserved timestamp and version fields.
func (s *Service) RawPreferences(req Request) map[string]any {
	return s.Record(req).Map()
}

// IsCategoryAllowed reports whether key may be used. Required categories are
// always allowed, even without a request or cookie; any other key needs an
// explicit true in the cookie.
func (s *Service) IsCategoryAllowed(req Request, key string) bool {
	if s.categories.IsRequired(key) {
		return true
	}
	return s.Record(req).Allowed(key)
}

// ShouldShowBanner reports whether a visitor still has to decide.
// Without a request there is nobody to show the banner to.
func (s *Service) ShouldShowBanner(req Request) bool {
	return req != nil && !s.HasConsent(req)
}

// InitialPreferences returns the choices a preferences form starts with:
// every configured category set to its required flag, overlaid with the
// choices already stored in the cookie. Required categories stay true.
func (s *Service) InitialPreferences(req Request) map[string]bool {
	stored := s.Preferences(req)
	out := make(map[string]bool, s.categories.Len())
	for _, cat := range s.categories.list {
		v, ok := stored[cat.Key]
		out[cat.Key] = cat.Required || (ok && v)
	}
	return out
}

// AcceptAll enables every configured category.
func (s *Service) AcceptAll(ctx context.Context, req Request) cookie.Cookie {
	prefs := make(map[string]any, s.categories.Len())
	for _, cat := range s.categories.list {
		prefs[cat.Key] = true
	}
	return s.finalize(ctx, req, RecordFromMap(prefs), ActionAcceptAll)
}

// RejectOptional enables only required categories.
func (s *Service) RejectOptional(ctx context.Context, req Request) cookie.Cookie {
	prefs := make(map[string]any, s.categories.Len())
	for _, cat := range s.categories.list {
		prefs[cat.Key] = cat.Required
	}
	return s.finalize(ctx, req, RecordFromMap(prefs), ActionRejectOptional)
}

// Save stores caller-supplied preferences, typically decoded from an
// untrusted client. Unknown keys are kept; required categories are forced on.
func (s *Service) Save(ctx context.Context, req Request, prefs map[string]any) cookie.Cookie {
	return s.SaveWithAction(ctx, req, prefs, ActionCustom)
}

// SaveWithAction is Save with an explicit audit action. Unknown actions are recorded as custom.
func (s *Service) SaveWithAction(ctx context.Context, req Request, prefs map[string]any, action Action) cookie.Cookie {
	if !action.IsValid() {
		action = ActionCustom
	}
	return s.finalize(ctx, req, RecordFromMap(prefs), action)
}

// Withdraw returns a descriptor that deletes the consent cookie so the
// visitor is asked again. No audit entry is written.
func (s *Service) Withdraw() cookie.Cookie {
	return cookie.New(CookieName, "", s.cookieOpts...).Expired()
}

// finalize enforces required categories, stamps the record, emits the audit
// entry and returns the outbound cookie.
func (s *Service) finalize(ctx context.Context, req Request, rec Record, action Action) cookie.Cookie {
	rec = rec.clone()
	for _, cat := range s.categories.list {
		if cat.Required {
			rec.Choices[cat.Key] = true
			delete(rec.Extra, cat.Key)
		}
	}

	at := s.now()
	rec.Timestamp = at.Unix()
	rec.Version = s.cfg.Version

	s.audit(ctx, req, action, rec, at)

	payload, err := Encode(rec)
	if err != nil {
		// Extra holds only sanitized values, so this is unreachable in practice;
		// choices and reserved fields always encode.
		rec.Extra = nil
		payload, _ = Encode(rec)
	}

	return cookie.New(CookieName, EncodeCookieValue(payload), s.cookieOpts...)
}
