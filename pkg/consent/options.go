package consent

import (
	"log/slog"
	"time"
)

// Translator resolves a display reference within a translation domain.
// Implementations return ref itself (or an empty string) when no translation exists.
type Translator interface {
	Translate(ref, domain string) string
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(ref, domain string) string

func (f TranslatorFunc) Translate(ref, domain string) string {
	return f(ref, domain)
}

// Recorder receives one call per consent decision, e.g. to update metrics.
type Recorder interface {
	RecordDecision(action Action, accepted, rejected []string)
}

// Option configures optional collaborators of a Service.
type Option func(*Service)

// WithTranslator sets the translator used by Categories when Config.UseTranslations is on.
func WithTranslator(t Translator) Option {
	return func(s *Service) {
		s.translator = t
	}
}

// WithLogger sets the sink for audit entries. Without a logger, audit logging is skipped.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithRecorder sets a decision recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}
