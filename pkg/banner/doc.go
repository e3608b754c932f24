// Package banner serves the cookie banner's actions over HTTP and exposes
// consent helpers to html/template.
//
// Mount the routes under /consent behind cookie.Middleware so the consent
// cookie is attached to the response:
//
//	r.Use(cookie.Middleware)
//	r.Mount("/consent", banner.New(svc).Routes())
//
// Every write action answers with
//
//	{"event":"cookieConsent:changed","preferences":{...}}
//
// so client code can react to the new decision without re-reading the cookie.
package banner
