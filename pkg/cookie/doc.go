// Package cookie provides plain HTTP cookie descriptors and a deferred
// response relay for Go applications.
//
// # Overview
//
// A Cookie is a value describing an outbound cookie: name, value and the
// attributes in Options. Building one has no side effects, which lets domain
// code decide what cookie to send without holding a http.ResponseWriter.
//
//   - New(), Cookie.HTTP(), Cookie.Expired(): build descriptors
//   - Set(), Get(), Has(): plain cookie I/O
//   - Middleware(), Defer(): attach cookies decided late in a request
//
// # Deferred relay
//
// Decisions are often taken by code that runs before the final response is
// assembled. Middleware wraps the response writer and stores a queue in the
// request context; Defer adds a descriptor to that queue and the queue is
// written out right before the headers are sent.
//
//	r := chi.NewRouter()
//	r.Use(cookie.Middleware)
//	r.Post("/consent", func(w http.ResponseWriter, r *http.Request) {
//	    cookie.Defer(r.Context(), cookie.New("name", "value", cookie.WithMaxAge(3600)))
//	    w.WriteHeader(http.StatusNoContent)
//	})
//
// # Configuration
//
// Config carries attribute defaults that can be parsed from environment
// variables via github.com/caarlos0/env, usually under a prefix:
//
//	type AppConfig struct {
//	    Cookie cookie.Config `envPrefix:"CONSENT_COOKIE_"`
//	}
//
// # Error Handling
//
// ErrCookieNotFound is returned by Get for missing cookies and
// ErrInvalidSameSite by ParseSameSite for unknown modes.
package cookie
