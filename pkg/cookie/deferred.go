package cookie

import (
	"context"
	"net/http"
	"sync"
)

// pendingContextKey is the key for storing the per-request cookie queue in context
type pendingContextKey struct{}

// pending collects cookies decided during request handling until the
// response headers are about to be written.
type pending struct {
	mu      sync.Mutex
	cookies []Cookie
	flushed bool
}

func (p *pending) add(c Cookie) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.flushed {
		return false
	}
	// Later decisions for the same cookie replace earlier ones.
	for i := range p.cookies {
		if p.cookies[i].Name == c.Name && p.cookies[i].Path == c.Path && p.cookies[i].Domain == c.Domain {
			p.cookies[i] = c
			return true
		}
	}
	p.cookies = append(p.cookies, c)
	return true
}

func (p *pending) flush(w http.ResponseWriter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.flushed {
		return
	}
	p.flushed = true
	for _, c := range p.cookies {
		Set(w, c)
	}
	p.cookies = nil
}

// Defer queues c to be attached to the current response right before its
// headers are written. It reports false when the request was not served
// through Middleware or the headers have already been sent.
func Defer(ctx context.Context, c Cookie) bool {
	if ctx == nil {
		return false
	}
	p, ok := ctx.Value(pendingContextKey{}).(*pending)
	if !ok {
		return false
	}
	return p.add(c)
}

// Middleware enables Defer for downstream handlers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := &pending{}
		rw := &relayWriter{ResponseWriter: w, pending: p}
		ctx := context.WithValue(r.Context(), pendingContextKey{}, p)

		next.ServeHTTP(rw, r.WithContext(ctx))

		// Handlers that never write still get their cookies.
		if !rw.wroteHeader {
			rw.WriteHeader(http.StatusOK)
		}
	})
}

type relayWriter struct {
	http.ResponseWriter
	pending     *pending
	wroteHeader bool
}

func (w *relayWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.pending.flush(w.ResponseWriter)
	w.ResponseWriter.WriteHeader(status)
}

func (w *relayWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *relayWriter) Flush() {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *relayWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
