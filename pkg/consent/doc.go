// Package consent implements a GDPR cookie-consent engine.
//
// A Service holds an immutable set of consent categories (necessary,
// analytics, marketing, functional, ...) and turns visitor decisions into a
// client-side cookie. It never stores consent itself: the record lives in the
// cookie named CookieName as a JSON object
//
//	{"necessary":true,"analytics":false,"timestamp":1718000000,"version":"1.0"}
//
// # Read path
//
// HasConsent, Preferences, RawPreferences, IsCategoryAllowed,
// InitialPreferences and ShouldShowBanner inspect the inbound cookie.
// Malformed or foreign cookie content is treated as "no consent yet" and
// never produces an error. Required categories are always allowed.
//
// # Write path
//
// AcceptAll, RejectOptional, Save and SaveWithAction build a record, force
// every required category to true, stamp the timestamp and policy version,
// emit one audit entry and return a cookie.Cookie descriptor. Attaching the
// descriptor to the response is up to the caller, typically via
// cookie.Defer:
//
//	svc := consent.MustNew(cfg, consent.WithLogger(log))
//
//	func acceptAll(w http.ResponseWriter, r *http.Request) {
//	    c := svc.AcceptAll(r.Context(), consent.FromHTTP(r))
//	    cookie.Defer(r.Context(), c)
//	}
//
// The cookie is neither Secure nor HttpOnly by default so that scripts and
// plain-HTTP deployments can read it. Both are configurable.
//
// # Audit
//
// With EnableLogging on and a logger attached, each decision produces one
// record at the configured level carrying the action, the preferences, the
// accepted and rejected category lists and the anonymized client IP.
// A missing logger silently disables auditing.
//
// # Configuration
//
// Config is parsed from environment variables (see pkg/config) and validated
// by New. Categories are loaded from YAML with LoadCategoriesFile or default
// to DefaultCategories.
package consent
