package banner

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/consentkit/pkg/consent"
	"github.com/dmitrymomot/consentkit/pkg/cookie"
	"github.com/dmitrymomot/consentkit/pkg/i18n"
	"github.com/dmitrymomot/consentkit/pkg/logger"
	"github.com/dmitrymomot/consentkit/pkg/response"
)

// DefaultMaxBodySize bounds the preferences payload.
const DefaultMaxBodySize int64 = 16 << 10

// Handler serves the banner actions over HTTP.
type Handler struct {
	svc       *consent.Service
	localized map[string]*consent.Service
	log       *slog.Logger
	maxBody   int64
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger for response failures.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithLocalizedServices serves category names from the service registered
// for the request locale (see i18n.Middleware). Locales without an entry use
// the default service.
func WithLocalizedServices(services map[string]*consent.Service) Option {
	return func(h *Handler) {
		for lang, svc := range services {
			if svc != nil {
				h.localized[lang] = svc
			}
		}
	}
}

// WithMaxBodySize overrides DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

// New returns a Handler backed by svc. It panics when svc is nil.
func New(svc *consent.Service, opts ...Option) *Handler {
	if svc == nil {
		panic("banner: nil consent service")
	}
	h := &Handler{
		svc:       svc,
		localized: make(map[string]*consent.Service),
		log:       slog.New(slog.DiscardHandler),
		maxBody:   DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("banner"))
	return h
}

// Routes returns the banner endpoints, meant to be mounted under /consent.
//
//	GET    /                 banner state
//	POST   /accept-all
//	POST   /reject-optional
//	POST   /preferences      JSON object of category choices
//	DELETE /                 withdraw consent
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.state)
	r.Delete("/", h.withdraw)
	r.Post("/accept-all", h.acceptAll)
	r.Post("/reject-optional", h.rejectOptional)
	r.Post("/preferences", h.savePreferences)
	return r
}

func (h *Handler) service(ctx context.Context) *consent.Service {
	if svc, ok := h.localized[i18n.GetLocale(ctx)]; ok {
		return svc
	}
	return h.svc
}

func (h *Handler) state(w http.ResponseWriter, r *http.Request) {
	svc := h.service(r.Context())
	req := consent.FromHTTP(r)
	h.render(w, r, response.Raw(State{
		ShowBanner:  svc.ShouldShowBanner(req),
		Preferences: svc.InitialPreferences(req),
		Categories:  svc.Categories().All(),
	}, response.WithNoStore()))
}

func (h *Handler) acceptAll(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service(r.Context()).AcceptAll(r.Context(), consent.FromHTTP(r)))
}

func (h *Handler) rejectOptional(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service(r.Context()).RejectOptional(r.Context(), consent.FromHTTP(r)))
}

func (h *Handler) savePreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.decodePreferences(w, r)
	if err != nil {
		httpErr := response.HTTPError{Code: http.StatusBadRequest, Key: "invalid_body"}
		if errors.Is(err, ErrBodyTooLarge) {
			httpErr = response.HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "body_too_large"}
		}
		h.render(w, r, response.JSONError(httpErr.Wrap(err), response.WithNoStore()))
		return
	}
	h.respond(w, r, h.service(r.Context()).Save(r.Context(), consent.FromHTTP(r), prefs))
}

func (h *Handler) withdraw(w http.ResponseWriter, r *http.Request) {
	c := h.svc.Withdraw()
	h.attach(w, r, c)
	h.render(w, r, response.Raw(Event{Event: ChangedEvent, Preferences: map[string]any{}}, response.WithNoStore()))
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, c cookie.Cookie) {
	h.attach(w, r, c)
	h.render(w, r, response.Raw(Event{
		Event:       ChangedEvent,
		Preferences: consent.Decode(c.Value).Map(),
	}, response.WithNoStore()))
}

// attach queues c for the deferred relay and falls back to setting it
// directly when the router does not use cookie.Middleware.
func (h *Handler) attach(w http.ResponseWriter, r *http.Request, c cookie.Cookie) {
	if !cookie.Defer(r.Context(), c) {
		cookie.Set(w, c)
	}
}

func (h *Handler) decodePreferences(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody))

	var prefs map[string]any
	if err := dec.Decode(&prefs); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrBodyTooLarge
		}
		return nil, errors.Join(ErrInvalidBody, err)
	}
	if prefs == nil {
		return nil, errors.Join(ErrInvalidBody, errors.New("expected a JSON object"))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidBody, errors.New("unexpected data after JSON object"))
	}
	return prefs, nil
}
