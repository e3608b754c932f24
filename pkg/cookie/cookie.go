package cookie

import (
	"net/http"
	"strings"
	"time"
)

// Cookie describes an outbound cookie. It is a plain value: producing one
// has no side effects, attaching it to a response is done by Set or by the
// deferred relay (see Middleware and Defer).
type Cookie struct {
	Name  string
	Value string
	Options
}

// New builds a cookie descriptor on top of DefaultOptions.
func New(name, value string, opts ...Option) Cookie {
	return Cookie{
		Name:    name,
		Value:   value,
		Options: applyOptions(DefaultOptions(), opts),
	}
}

// HTTP converts the descriptor into a *http.Cookie.
func (c Cookie) HTTP() *http.Cookie {
	hc := &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Domain:   c.Domain,
		MaxAge:   c.MaxAge,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
		SameSite: c.SameSite,
	}
	if c.MaxAge < 0 {
		hc.Expires = time.Unix(0, 0)
	}
	return hc
}

// Expired returns a copy of c that instructs the browser to drop the cookie.
func (c Cookie) Expired() Cookie {
	c.Value = ""
	c.MaxAge = -1
	return c
}

// Set writes the cookie to the response headers.
func Set(w http.ResponseWriter, c Cookie) {
	http.SetCookie(w, c.HTTP())
}

// Get returns the raw value of the named request cookie.
// ErrCookieNotFound is returned when the request is nil or carries no such cookie.
//
// The Cookie header is scanned directly rather than through
// http.Request.Cookie, which silently drops values holding characters
// outside the RFC 6265 cookie-octet set (double quotes, backslashes, commas,
// spaces). Browsers and hand-written clients send such values anyway, e.g.
// unescaped JSON. The first pair with a matching name wins.
func Get(r *http.Request, name string) (string, error) {
	if r == nil || name == "" {
		return "", ErrCookieNotFound
	}
	prefix := name + "="
	for _, line := range r.Header.Values("Cookie") {
		for part := range strings.SplitSeq(line, ";") {
			part = strings.TrimSpace(part)
			if !strings.HasPrefix(part, prefix) {
				continue
			}
			return unquote(part[len(prefix):]), nil
		}
	}
	return "", ErrCookieNotFound
}

// unquote strips one pair of surrounding double quotes, matching net/http.
func unquote(v string) string {
	if len(v) > 1 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}

// Has reports whether the request carries the named cookie, regardless of its value.
func Has(r *http.Request, name string) bool {
	_, err := Get(r, name)
	return err == nil
}
