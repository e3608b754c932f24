package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/consentkit/pkg/consent"
)

// OtherCategory labels choices for keys outside the configured category set.
// Client-supplied keys are unbounded and must not become label values.
const OtherCategory = "other"

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Consent holds Prometheus collectors for consent decisions.
// It implements consent.Recorder.
type Consent struct {
	Decisions *prometheus.CounterVec
	Choices   *prometheus.CounterVec

	known map[string]struct{}
}

// NewConsent registers consent collectors with reg; a nil reg means the
// default registerer. categories lists the configured category keys.
func NewConsent(reg prometheus.Registerer, namespace string, categories []string) *Consent {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	known := make(map[string]struct{}, len(categories))
	for _, key := range categories {
		known[key] = struct{}{}
	}

	return &Consent{
		Decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "consent",
			Name:      "decisions_total",
			Help:      "Total number of consent decisions, labeled by action",
		}, []string{"action"}),
		Choices: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "consent",
			Name:      "category_choices_total",
			Help:      "Total number of per-category consent choices, labeled by category and outcome",
		}, []string{"category", "outcome"}),
		known: known,
	}
}

// RecordDecision implements consent.Recorder.
func (m *Consent) RecordDecision(action consent.Action, accepted, rejected []string) {
	m.Decisions.WithLabelValues(action.String()).Inc()
	for _, key := range accepted {
		m.Choices.WithLabelValues(m.label(key), OutcomeAccepted).Inc()
	}
	for _, key := range rejected {
		m.Choices.WithLabelValues(m.label(key), OutcomeRejected).Inc()
	}
}

func (m *Consent) label(key string) string {
	if _, ok := m.known[key]; ok {
		return key
	}
	return OtherCategory
}
