package consent

import (
	"net/http"

	"github.com/dmitrymomot/consentkit/pkg/clientip"
	"github.com/dmitrymomot/consentkit/pkg/cookie"
)

// Request is the inbound side of the HTTP boundary. Every method that
// accepts a Request also accepts nil and treats it as "no request".
type Request interface {
	// Cookie returns the named cookie value and whether it was present.
	Cookie(name string) (string, bool)
	ClientIP() string
	UserAgent() string
	Referer() string
	// RequestURI returns the path and query of the request.
	RequestURI() string
}

// FromHTTP adapts a *http.Request. A nil request yields a nil Request.
func FromHTTP(r *http.Request) Request {
	if r == nil {
		return nil
	}
	return httpRequest{r: r}
}

type httpRequest struct {
	r *http.Request
}

func (h httpRequest) Cookie(name string) (string, bool) {
	v, err := cookie.Get(h.r, name)
	if err != nil {
		return "", false
	}
	return v, true
}

func (h httpRequest) ClientIP() string {
	return clientip.FromRequest(h.r)
}

func (h httpRequest) UserAgent() string {
	return h.r.UserAgent()
}

func (h httpRequest) Referer() string {
	return h.r.Referer()
}

func (h httpRequest) RequestURI() string {
	if h.r.URL == nil {
		return h.r.RequestURI
	}
	return h.r.URL.RequestURI()
}
