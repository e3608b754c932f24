package consent

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/consentkit/pkg/clientip"
	"github.com/dmitrymomot/consentkit/pkg/logger"
)

// auditTimeLayout matches the "Y-m-d H:i:s" stamps found in existing consent logs.
const auditTimeLayout = time.DateTime

// AuditEntry is the proof-of-consent record emitted for every decision.
// Request-derived fields are empty when the decision had no request.
type AuditEntry struct {
	Action             Action         `json:"action"`
	Preferences        map[string]any `json:"preferences"`
	Timestamp          string         `json:"timestamp"`
	IPAddress          string         `json:"ip_address,omitempty"`
	UserAgent          string         `json:"user_agent,omitempty"`
	Referrer           string         `json:"referrer,omitempty"`
	RequestURI         string         `json:"request_uri,omitempty"`
	AcceptedCategories []string       `json:"accepted_categories"`
	RejectedCategories []string       `json:"rejected_categories"`
	Message            string         `json:"message"`
	Version            string         `json:"version"`
}

// NewAuditEntry builds the audit entry for a finalized record.
// order lists configured category keys; they come first in the accepted and
// rejected lists, any other keys follow in lexical order.
func NewAuditEntry(action Action, rec Record, req Request, at time.Time, order []string) AuditEntry {
	accepted, rejected := partition(rec, order)

	version := rec.Version
	if version == "" {
		version = "unknown"
	}

	entry := AuditEntry{
		Action:             action,
		Preferences:        rec.Map(),
		Timestamp:          at.UTC().Format(auditTimeLayout),
		AcceptedCategories: accepted,
		RejectedCategories: rejected,
		Version:            rec.Version,
		Message: fmt.Sprintf("Cookie consent %s: %d accepted, %d rejected (version %s)",
			action, len(accepted), len(rejected), version),
	}

	if req != nil {
		entry.IPAddress = clientip.Anonymize(req.ClientIP())
		entry.UserAgent = req.UserAgent()
		entry.Referrer = req.Referer()
		entry.RequestURI = req.RequestURI()
	}

	return entry
}

// Attrs renders the entry as slog attributes.
func (e AuditEntry) Attrs() []slog.Attr {
	attrs := []slog.Attr{
		logger.Component("consent"),
		logger.Action(string(e.Action)),
		slog.Any("preferences", e.Preferences),
		slog.String("timestamp", e.Timestamp),
		logger.Categories("accepted_categories", e.AcceptedCategories),
		logger.Categories("rejected_categories", e.RejectedCategories),
		slog.String("version", e.Version),
	}
	for _, a := range []slog.Attr{
		logger.OptionalString("ip_address", e.IPAddress),
		logger.OptionalString("user_agent", e.UserAgent),
		logger.OptionalString("referrer", e.Referrer),
		logger.OptionalString("request_uri", e.RequestURI),
	} {
		if a.Key != "" {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

// partition splits the non-reserved entries of rec into accepted (exactly
// true) and rejected (anything else).
func partition(rec Record, order []string) (accepted, rejected []string) {
	accepted, rejected = []string{}, []string{}

	seen := make(map[string]struct{}, len(order))
	classify := func(key string) {
		if v, ok := rec.Choices[key]; ok {
			if v {
				accepted = append(accepted, key)
			} else {
				rejected = append(rejected, key)
			}
			return
		}
		if _, ok := rec.Extra[key]; ok {
			rejected = append(rejected, key)
		}
	}

	for _, key := range order {
		seen[key] = struct{}{}
		classify(key)
	}

	rest := make([]string, 0, len(rec.Choices)+len(rec.Extra))
	for key := range rec.Choices {
		if _, ok := seen[key]; !ok {
			rest = append(rest, key)
		}
	}
	for key := range rec.Extra {
		if _, ok := seen[key]; ok {
			continue
		}
		if _, dup := rec.Choices[key]; dup {
			continue
		}
		rest = append(rest, key)
	}
	slices.Sort(rest)
	for _, key := range rest {
		classify(key)
	}

	return accepted, rejected
}

// audit emits the entry and records metrics. Sink panics are swallowed so a
// broken log pipeline never fails a consent decision.
func (s *Service) audit(ctx context.Context, req Request, action Action, rec Record, at time.Time) {
	logEnabled := s.cfg.EnableLogging && s.logger != nil
	if !logEnabled && s.recorder == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	entry := NewAuditEntry(action, rec, req, at, s.categories.Keys())

	if logEnabled {
		guard(func() { s.logger.LogAttrs(ctx, s.level, entry.Message, entry.Attrs()...) })
	}
	if s.recorder != nil {
		guard(func() { s.recorder.RecordDecision(action, entry.AcceptedCategories, entry.RejectedCategories) })
	}
}

// guard runs fn and swallows any panic it raises.
func guard(fn func()) {
	defer func() { _ = recover() }()
	fn()
}
