package logger

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// AsyncOptions configures the queue of an AsyncHandler.
type AsyncOptions struct {
	BufferSize int // Max records queued before new ones are dropped
}

// AsyncHandler hands records to a background goroutine and returns immediately.
// Handle never blocks and never reports errors of the wrapped handler: when the
// queue is full the record is dropped and counted. Call Close to drain the queue.
type AsyncHandler struct {
	next slog.Handler
	core *asyncCore
}

type asyncItem struct {
	handler slog.Handler
	ctx     context.Context
	rec     slog.Record
}

// asyncCore is shared by all handlers derived through WithAttrs and WithGroup.
type asyncCore struct {
	mu      sync.RWMutex
	queue   chan asyncItem
	closed  bool
	done    chan struct{}
	once    sync.Once
	dropped atomic.Int64
	failed  atomic.Int64
}

// NewAsyncHandler wraps next with a buffered, fire-and-forget queue.
func NewAsyncHandler(next slog.Handler, opts AsyncOptions) *AsyncHandler {
	if next == nil {
		panic("logger: async handler requires a non-nil handler")
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = 1024
	}

	core := &asyncCore{
		queue: make(chan asyncItem, opts.BufferSize),
		done:  make(chan struct{}),
	}
	go core.run()

	return &AsyncHandler{next: next, core: core}
}

func (c *asyncCore) run() {
	defer close(c.done)
	for item := range c.queue {
		if err := item.handler.Handle(item.ctx, item.rec); err != nil {
			c.failed.Add(1)
		}
	}
}

func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle queues a copy of rec. The context loses its cancellation so that
// extractors still see request values after the request has finished.
func (h *AsyncHandler) Handle(ctx context.Context, rec slog.Record) error {
	if ctx == nil {
		ctx = context.Background()
	}
	item := asyncItem{
		handler: h.next,
		ctx:     context.WithoutCancel(ctx),
		rec:     rec.Clone(),
	}

	h.core.mu.RLock()
	defer h.core.mu.RUnlock()
	if h.core.closed {
		h.core.dropped.Add(1)
		return nil
	}

	select {
	case h.core.queue <- item:
	default:
		h.core.dropped.Add(1)
	}
	return nil
}

func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AsyncHandler{next: h.next.WithAttrs(attrs), core: h.core}
}

func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return &AsyncHandler{next: h.next.WithGroup(name), core: h.core}
}

// Dropped returns the number of records discarded because the queue was full or closed.
func (h *AsyncHandler) Dropped() int64 {
	return h.core.dropped.Load()
}

// Failed returns the number of records the wrapped handler failed to write.
func (h *AsyncHandler) Failed() int64 {
	return h.core.failed.Load()
}

// Close stops accepting records and waits until queued ones are written or ctx is done.
// It is safe to call more than once.
func (h *AsyncHandler) Close(ctx context.Context) error {
	h.core.once.Do(func() {
		h.core.mu.Lock()
		h.core.closed = true
		close(h.core.queue)
		h.core.mu.Unlock()
	})

	select {
	case <-h.core.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
