package consent_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/consentkit/pkg/consent"
	"github.com/dmitrymomot/consentkit/pkg/cookie"
	"github.com/dmitrymomot/consentkit/pkg/logger"
)

var fixedNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

// fakeRequest is a minimal consent.Request.
type fakeRequest struct {
	cookies   map[string]string
	ip        string
	userAgent string
	referer   string
	uri       string
}

func (r *fakeRequest) Cookie(name string) (string, bool) {
	v, ok := r.cookies[name]
	return v, ok
}

func (r *fakeRequest) ClientIP() string   { return r.ip }
func (r *fakeRequest) UserAgent() string  { return r.userAgent }
func (r *fakeRequest) Referer() string    { return r.referer }
func (r *fakeRequest) RequestURI() string { return r.uri }

func withCookie(value string) *fakeRequest {
	return &fakeRequest{cookies: map[string]string{consent.CookieName: value}}
}

type mockTranslator struct {
	mock.Mock
}

func (m *mockTranslator) Translate(ref, domain string) string {
	args := m.Called(ref, domain)
	return args.String(0)
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) RecordDecision(action consent.Action, accepted, rejected []string) {
	m.Called(action, accepted, rejected)
}

type panicHandler struct{}

func (panicHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (panicHandler) Handle(context.Context, slog.Record) error { panic("sink is broken") }
func (h panicHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h panicHandler) WithGroup(string) slog.Handler           { return h }

func twoCategories() []consent.Category {
	return []consent.Category{
		{Key: "necessary", Name: "categories.necessary.name", Description: "categories.necessary.description", Required: true},
		{Key: "analytics", Name: "categories.analytics.name", Description: "categories.analytics.description"},
	}
}

func newService(t *testing.T, opts ...consent.Option) *consent.Service {
	t.Helper()
	cfg := consent.DefaultConfig()
	cfg.Categories = twoCategories()
	cfg.CookieLifetime = 3600

	opts = append([]consent.Option{consent.WithClock(func() time.Time { return fixedNow })}, opts...)
	svc, err := consent.New(cfg, opts...)
	require.NoError(t, err)
	return svc
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("fills empty textual settings", func(t *testing.T) {
		t.Parallel()
		svc, err := consent.New(consent.Config{
			CookieLifetime: 60,
			Categories:     twoCategories(),
		})
		require.NoError(t, err)

		cfg := svc.Config()
		assert.Equal(t, consent.DefaultVersion, cfg.Version)
		assert.Equal(t, consent.DefaultLogLevel, cfg.LogLevel)
		assert.Equal(t, consent.DefaultTranslationDomain, cfg.TranslationDomain)
		assert.Equal(t, "/", cfg.CookiePath)
		assert.Len(t, cfg.Categories, 2)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		t.Parallel()
		_, err := consent.New(consent.Config{CookieLifetime: -1})
		require.Error(t, err)
		assert.ErrorIs(t, err, consent.ErrInvalidLifetime)
		assert.ErrorIs(t, err, consent.ErrNoCategories)
	})

	t.Run("MustNew panics on invalid config", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			consent.MustNew(consent.Config{})
		})
	})
}

func TestRejectOptional_EndToEnd(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	c := svc.RejectOptional(context.Background(), nil)

	assert.Equal(t, consent.CookieName, c.Name)
	assert.Equal(t, "/", c.Path)
	assert.Empty(t, c.Domain)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.False(t, c.Secure)
	assert.False(t, c.HttpOnly)
	assert.Equal(t, 3600, c.MaxAge)

	rec := consent.Decode(c.Value)
	assert.Equal(t, map[string]bool{"necessary": true, "analytics": false}, rec.Choices)
	assert.Empty(t, rec.Extra)
	assert.Equal(t, fixedNow.Unix(), rec.Timestamp)
	assert.Equal(t, "1.0", rec.Version)
}

func TestCookieSurvivesHTTPRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	c := svc.Save(context.Background(), nil, map[string]any{"analytics": true, "note": "a, b; \"c\""})

	w := httptest.NewRecorder()
	cookie.Set(w, c)
	resp := w.Result()
	defer resp.Body.Close()
	require.Len(t, resp.Cookies(), 1)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(resp.Cookies()[0])
	req := consent.FromHTTP(r)

	assert.True(t, svc.HasConsent(req))
	assert.Equal(t, map[string]bool{"necessary": true, "analytics": true}, svc.Preferences(req))

	raw := svc.RawPreferences(req)
	assert.Equal(t, "a, b; \"c\"", raw["note"])
	assert.Equal(t, "1.0", raw[consent.KeyVersion])
	assert.Equal(t, fixedNow.Unix(), raw[consent.KeyTimestamp])
}

func TestFromHTTP_UnescapedCookieHeader(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	tests := []struct {
		name        string
		value       string
		preferences map[string]bool
	}{
		{
			name:        "raw json",
			value:       `{"necessary":true,"analytics":true}`,
			preferences: map[string]bool{"necessary": true, "analytics": true},
		},
		{
			name:        "backslash garbage",
			value:       `garbage\x`,
			preferences: map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Cookie", "theme=dark; "+consent.CookieName+"="+tt.value)
			req := consent.FromHTTP(r)

			assert.True(t, svc.HasConsent(req))
			assert.False(t, svc.ShouldShowBanner(req))
			assert.Equal(t, tt.preferences, svc.Preferences(req))
		})
	}
}

func TestAcceptAll(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	rec := consent.Decode(svc.AcceptAll(context.Background(), nil).Value)

	assert.Equal(t, map[string]bool{"necessary": true, "analytics": true}, rec.Choices)
}

func TestSave(t *testing.T) {
	t.Parallel()

	t.Run("required categories are forced on", func(t *testing.T) {
		t.Parallel()
		svc := newService(t)
		c := svc.Save(context.Background(), nil, map[string]any{"necessary": false, "analytics": true})

		rec := consent.Decode(c.Value)
		assert.True(t, rec.Choices["necessary"])
		assert.True(t, rec.Choices["analytics"])
	})

	t.Run("non-boolean value for a required category is replaced", func(t *testing.T) {
		t.Parallel()
		svc := newService(t)
		c := svc.Save(context.Background(), nil, map[string]any{"necessary": "no"})

		rec := consent.Decode(c.Value)
		assert.True(t, rec.Choices["necessary"])
		assert.NotContains(t, rec.Extra, "necessary")
	})

	t.Run("unknown keys are preserved", func(t *testing.T) {
		t.Parallel()
		svc := newService(t)
		c := svc.Save(context.Background(), nil, map[string]any{
			"analytics": false,
			"vendor_x":  true,
			"note":      "hi",
		})

		rec := consent.Decode(c.Value)
		assert.Equal(t, map[string]bool{"necessary": true, "analytics": false, "vendor_x": true}, rec.Choices)
		assert.Equal(t, map[string]any{"note": "hi"}, rec.Extra)
	})

	t.Run("reserved fields come from the service", func(t *testing.T) {
		t.Parallel()
		svc := newService(t)
		c := svc.Save(context.Background(), nil, map[string]any{
			consent.KeyTimestamp: 1,
			consent.KeyVersion:   "0.1",
		})

		rec := consent.Decode(c.Value)
		assert.Equal(t, fixedNow.Unix(), rec.Timestamp)
		assert.Equal(t, "1.0", rec.Version)
	})

	t.Run("unencodable values are dropped", func(t *testing.T) {
		t.Parallel()
		svc := newService(t)
		c := svc.Save(context.Background(), nil, map[string]any{
			"analytics": true,
			"fn":        func() {},
			"nan":       math.NaN(),
			"inf":       math.Inf(1),
			"ch":        make(chan int),
			"list":      []any{"a", math.NaN(), true},
		})

		rec := consent.Decode(c.Value)
		assert.True(t, rec.Choices["analytics"])
		assert.NotContains(t, rec.Extra, "fn")
		assert.NotContains(t, rec.Extra, "nan")
		assert.NotContains(t, rec.Extra, "inf")
		assert.NotContains(t, rec.Extra, "ch")
		assert.Equal(t, []any{"a", true}, rec.Extra["list"])
	})

	t.Run("nil map", func(t *testing.T) {
		t.Parallel()
		svc := newService(t)
		rec := consent.Decode(svc.Save(context.Background(), nil, nil).Value)
		assert.Equal(t, map[string]bool{"necessary": true}, rec.Choices)
	})

	t.Run("nil context", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		svc := newService(t, consent.WithLogger(logger.New(logger.WithOutput(buf))))
		//nolint:staticcheck // nil context is tolerated
		c := svc.Save(nil, nil, map[string]any{"analytics": true})
		assert.NotEmpty(t, c.Value)
		assert.NotEmpty(t, buf.String())
	})
}

func TestReadOperations(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	valid := consent.EncodeCookieValue(`{"necessary":true,"analytics":true,"timestamp":1,"version":"1.0"}`)

	tests := []struct {
		name          string
		req           consent.Request
		hasConsent    bool
		showBanner    bool
		analytics     bool
		preferences   map[string]bool
		initialChoice map[string]bool
	}{
		{
			name:          "nil request",
			req:           nil,
			preferences:   map[string]bool{},
			initialChoice: map[string]bool{"necessary": true, "analytics": false},
		},
		{
			name:          "no cookie",
			req:           &fakeRequest{},
			showBanner:    true,
			preferences:   map[string]bool{},
			initialChoice: map[string]bool{"necessary": true, "analytics": false},
		},
		{
			name:          "malformed cookie still counts as a decision",
			req:           withCookie("{not json"),
			hasConsent:    true,
			preferences:   map[string]bool{},
			initialChoice: map[string]bool{"necessary": true, "analytics": false},
		},
		{
			name:          "empty cookie value",
			req:           withCookie(""),
			hasConsent:    true,
			preferences:   map[string]bool{},
			initialChoice: map[string]bool{"necessary": true, "analytics": false},
		},
		{
			name:          "valid cookie",
			req:           withCookie(valid),
			hasConsent:    true,
			analytics:     true,
			preferences:   map[string]bool{"necessary": true, "analytics": true},
			initialChoice: map[string]bool{"necessary": true, "analytics": true},
		},
		{
			name:          "raw json cookie",
			req:           withCookie(`{"necessary":false,"analytics":true}`),
			hasConsent:    true,
			analytics:     true,
			preferences:   map[string]bool{"necessary": false, "analytics": true},
			initialChoice: map[string]bool{"necessary": true, "analytics": true},
		},
		{
			name:          "string true is not consent",
			req:           withCookie(`{"analytics":"true"}`),
			hasConsent:    true,
			preferences:   map[string]bool{},
			initialChoice: map[string]bool{"necessary": true, "analytics": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.hasConsent, svc.HasConsent(tt.req))
			assert.Equal(t, tt.showBanner, svc.ShouldShowBanner(tt.req))
			assert.Equal(t, tt.preferences, svc.Preferences(tt.req))
			assert.Equal(t, tt.initialChoice, svc.InitialPreferences(tt.req))
			assert.True(t, svc.IsCategoryAllowed(tt.req, "necessary"))
			assert.Equal(t, tt.analytics, svc.IsCategoryAllowed(tt.req, "analytics"))
			assert.False(t, svc.IsCategoryAllowed(tt.req, "unknown"))
		})
	}
}

func TestWithdraw(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	c := svc.Withdraw()

	assert.Equal(t, consent.CookieName, c.Name)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HTTP().Expires.Equal(time.Unix(0, 0)))
}

func TestCookieAttributesAreConfigurable(t *testing.T) {
	t.Parallel()

	cfg := consent.DefaultConfig()
	cfg.CookieSecure = true
	cfg.CookieHTTPOnly = true
	cfg.CookieSameSite = "strict"
	cfg.CookieDomain = "example.com"
	cfg.CookiePath = "/app"

	svc, err := consent.New(cfg)
	require.NoError(t, err)

	c := svc.AcceptAll(context.Background(), nil)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, "/app", c.Path)
	assert.Equal(t, consent.DefaultCookieLifetime, c.MaxAge)
}

func TestCategories(t *testing.T) {
	t.Parallel()

	t.Run("raw references without translations", func(t *testing.T) {
		t.Parallel()
		tr := &mockTranslator{}
		svc := newService(t, consent.WithTranslator(tr))

		cats := svc.Categories()
		assert.Equal(t, []string{"necessary", "analytics"}, cats.Keys())
		cat, ok := cats.Get("necessary")
		require.True(t, ok)
		assert.Equal(t, "categories.necessary.name", cat.Name)
		tr.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything)
	})

	t.Run("translated once and memoized", func(t *testing.T) {
		t.Parallel()
		tr := &mockTranslator{}
		tr.On("Translate", "categories.necessary.name", "cookie_consent").Return("Necessary").Once()
		tr.On("Translate", "categories.necessary.description", "cookie_consent").Return("Required for the site to work").Once()
		tr.On("Translate", "categories.analytics.name", "cookie_consent").Return("Analytics").Once()
		tr.On("Translate", "categories.analytics.description", "cookie_consent").Return("").Once()

		cfg := consent.DefaultConfig()
		cfg.Categories = twoCategories()
		cfg.UseTranslations = true
		svc, err := consent.New(cfg, consent.WithTranslator(tr))
		require.NoError(t, err)

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = svc.Categories()
			}()
		}
		wg.Wait()

		cats := svc.Categories()
		necessary, _ := cats.Get("necessary")
		analytics, _ := cats.Get("analytics")
		assert.Equal(t, "Necessary", necessary.Name)
		assert.Equal(t, "Required for the site to work", necessary.Description)
		assert.True(t, necessary.Required)
		assert.Equal(t, "Analytics", analytics.Name)
		assert.Equal(t, "categories.analytics.description", analytics.Description, "falls back to the reference")

		tr.AssertExpectations(t)
		tr.AssertNumberOfCalls(t, "Translate", 4)
	})

	t.Run("translations enabled without translator", func(t *testing.T) {
		t.Parallel()
		cfg := consent.DefaultConfig()
		cfg.UseTranslations = true
		svc, err := consent.New(cfg)
		require.NoError(t, err)

		cat, ok := svc.Categories().Get("marketing")
		require.True(t, ok)
		assert.Equal(t, "categories.marketing.name", cat.Name)
	})
}

func TestAudit(t *testing.T) {
	t.Parallel()

	readEntry := func(t *testing.T, buf *bytes.Buffer) map[string]any {
		t.Helper()
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		return entry
	}

	t.Run("full entry with request", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
		svc := newService(t, consent.WithLogger(log))

		req := &fakeRequest{
			ip:        "192.168.1.100",
			userAgent: "Mozilla/5.0",
			referer:   "https://example.com/",
			uri:       "/consent/reject-optional?x=1",
		}
		svc.RejectOptional(context.Background(), req)

		entry := readEntry(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "Cookie consent reject_optional: 1 accepted, 1 rejected (version 1.0)", entry["msg"])
		assert.Equal(t, "consent", entry["component"])
		assert.Equal(t, "reject_optional", entry["action"])
		assert.Equal(t, "192.168.1.0", entry["ip_address"])
		assert.Equal(t, "Mozilla/5.0", entry["user_agent"])
		assert.Equal(t, "https://example.com/", entry["referrer"])
		assert.Equal(t, "/consent/reject-optional?x=1", entry["request_uri"])
		assert.Equal(t, []any{"necessary"}, entry["accepted_categories"])
		assert.Equal(t, []any{"analytics"}, entry["rejected_categories"])
		assert.Equal(t, "2024-06-10 12:00:00", entry["timestamp"])
		assert.Equal(t, "1.0", entry["version"])

		prefs, ok := entry["preferences"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, prefs["necessary"])
		assert.Equal(t, false, prefs["analytics"])
		assert.InDelta(t, float64(fixedNow.Unix()), prefs["timestamp"], 0)
	})

	t.Run("reduced entry without request", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		svc := newService(t, consent.WithLogger(logger.New(logger.WithOutput(buf))))

		svc.AcceptAll(context.Background(), nil)

		entry := readEntry(t, buf)
		assert.Equal(t, "Cookie consent accept_all: 2 accepted, 0 rejected (version 1.0)", entry["msg"])
		assert.NotContains(t, entry, "ip_address")
		assert.NotContains(t, entry, "user_agent")
		assert.NotContains(t, entry, "referrer")
		assert.NotContains(t, entry, "request_uri")
		assert.Equal(t, []any{}, entry["rejected_categories"])
	})

	t.Run("configured level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		cfg := consent.DefaultConfig()
		cfg.LogLevel = "notice"
		svc, err := consent.New(cfg, consent.WithLogger(logger.New(logger.WithOutput(buf))))
		require.NoError(t, err)

		svc.AcceptAll(context.Background(), nil)
		assert.Equal(t, "NOTICE", readEntry(t, buf)["level"])
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		cfg := consent.DefaultConfig()
		cfg.LogLevel = "loud"
		svc, err := consent.New(cfg, consent.WithLogger(logger.New(logger.WithOutput(buf))))
		require.NoError(t, err)

		svc.AcceptAll(context.Background(), nil)
		assert.Equal(t, "INFO", readEntry(t, buf)["level"])
	})

	t.Run("disabled logging", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		cfg := consent.DefaultConfig()
		cfg.EnableLogging = false
		svc, err := consent.New(cfg, consent.WithLogger(logger.New(logger.WithOutput(buf))))
		require.NoError(t, err)

		svc.AcceptAll(context.Background(), nil)
		assert.Empty(t, buf.String())
	})

	t.Run("no logger", func(t *testing.T) {
		t.Parallel()
		svc := newService(t)
		assert.NotPanics(t, func() {
			svc.AcceptAll(context.Background(), &fakeRequest{ip: "10.0.0.1"})
		})
	})

	t.Run("broken sink does not fail the decision", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, consent.WithLogger(slog.New(panicHandler{})))

		var c cookie.Cookie
		require.NotPanics(t, func() {
			c = svc.AcceptAll(context.Background(), nil)
		})
		assert.True(t, consent.Decode(c.Value).Choices["analytics"])
	})

	t.Run("withdraw is not audited", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		svc := newService(t, consent.WithLogger(logger.New(logger.WithOutput(buf))))
		svc.Withdraw()
		assert.Empty(t, buf.String())
	})
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	t.Run("called once per decision", func(t *testing.T) {
		t.Parallel()
		rec := &mockRecorder{}
		rec.On("RecordDecision", consent.ActionAcceptAll, []string{"necessary", "analytics"}, []string{}).Once()
		rec.On("RecordDecision", consent.ActionRejectOptional, []string{"necessary"}, []string{"analytics"}).Once()

		svc := newService(t, consent.WithRecorder(rec))
		svc.AcceptAll(context.Background(), nil)
		svc.RejectOptional(context.Background(), nil)

		rec.AssertExpectations(t)
	})

	t.Run("invalid action is recorded as custom", func(t *testing.T) {
		t.Parallel()
		rec := &mockRecorder{}
		rec.On("RecordDecision", consent.ActionCustom, []string{"necessary", "analytics"}, []string{}).Once()

		svc := newService(t, consent.WithRecorder(rec))
		svc.SaveWithAction(context.Background(), nil, map[string]any{"analytics": true}, consent.Action("bogus"))

		rec.AssertExpectations(t)
	})

	t.Run("explicit action is kept", func(t *testing.T) {
		t.Parallel()
		rec := &mockRecorder{}
		rec.On("RecordDecision", consent.ActionAcceptAll, mock.Anything, mock.Anything).Once()

		svc := newService(t, consent.WithRecorder(rec))
		svc.SaveWithAction(context.Background(), nil, map[string]any{"analytics": true}, consent.ActionAcceptAll)

		rec.AssertExpectations(t)
	})

	t.Run("panicking recorder keeps the log entry", func(t *testing.T) {
		t.Parallel()
		rec := &mockRecorder{}
		rec.On("RecordDecision", consent.ActionAcceptAll, mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { panic("metrics backend down") }).Once()

		buf := &bytes.Buffer{}
		svc := newService(t,
			consent.WithRecorder(rec),
			consent.WithLogger(logger.New(logger.WithOutput(buf))),
		)

		var c cookie.Cookie
		require.NotPanics(t, func() {
			c = svc.AcceptAll(context.Background(), nil)
		})
		assert.True(t, consent.Decode(c.Value).Choices["analytics"])

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "accept_all", entry["action"])
		rec.AssertExpectations(t)
	})

	t.Run("broken log sink still records", func(t *testing.T) {
		t.Parallel()
		rec := &mockRecorder{}
		rec.On("RecordDecision", consent.ActionRejectOptional, mock.Anything, mock.Anything).Once()

		svc := newService(t,
			consent.WithRecorder(rec),
			consent.WithLogger(slog.New(panicHandler{})),
		)

		require.NotPanics(t, func() {
			svc.RejectOptional(context.Background(), nil)
		})
		rec.AssertExpectations(t)
	})

	t.Run("runs with logging disabled", func(t *testing.T) {
		t.Parallel()
		rec := &mockRecorder{}
		rec.On("RecordDecision", consent.ActionCustom, mock.Anything, mock.Anything).Once()

		cfg := consent.DefaultConfig()
		cfg.EnableLogging = false
		svc, err := consent.New(cfg, consent.WithRecorder(rec))
		require.NoError(t, err)

		svc.Save(context.Background(), nil, nil)
		rec.AssertExpectations(t)
	})
}
