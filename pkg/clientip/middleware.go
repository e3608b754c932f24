package clientip

import "net/http"

// Middleware resolves the client IP once per request and stores it in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), GetIP(r))))
	})
}

// FromRequest returns the IP stored by Middleware, resolving it from headers when absent.
func FromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	if ip := FromContext(r.Context()); ip != "" {
		return ip
	}
	return GetIP(r)
}
