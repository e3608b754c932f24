package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is detected.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the Accept-Language header we are willing to parse.
const maxAcceptLanguageLength = 4096

// Matcher picks the best supported language for a client preference.
type Matcher struct {
	supported []string
	matcher   language.Matcher
}

// NewMatcher builds a matcher over the supported language codes. Codes that
// are not valid BCP 47 tags are ignored. The first valid code is the
// matcher's own fallback but callers get an explicit default (see Match).
func NewMatcher(supported ...string) *Matcher {
	m := &Matcher{}
	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		m.supported = append(m.supported, strings.ToLower(code))
	}
	if len(tags) > 0 {
		m.matcher = language.NewMatcher(tags)
	}
	return m
}

// Supported returns the normalized supported codes.
func (m *Matcher) Supported() []string {
	out := make([]string, len(m.supported))
	copy(out, m.supported)
	return out
}

// Match returns the supported code closest to any of the desired codes, in
// preference order, or "" when none is close enough.
func (m *Matcher) Match(desired ...string) string {
	if m.matcher == nil {
		return ""
	}
	tags := make([]language.Tag, 0, len(desired))
	for _, code := range desired {
		if tag, err := language.Parse(strings.TrimSpace(code)); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return ""
	}
	return m.match(tags)
}

// MatchAcceptLanguage negotiates an Accept-Language header value.
// It returns "" when the header is empty, invalid or has no acceptable match.
func (m *Matcher) MatchAcceptLanguage(header string) string {
	if m.matcher == nil || header == "" {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return m.match(tags)
}

func (m *Matcher) match(tags []language.Tag) string {
	_, index, confidence := m.matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(m.supported) {
		return ""
	}
	return m.supported[index]
}

// MatchLanguage negotiates header against supported codes and returns
// defaultLang when nothing matches.
func MatchLanguage(header string, supported []string, defaultLang string) string {
	if lang := NewMatcher(supported...).MatchAcceptLanguage(header); lang != "" {
		return lang
	}
	return defaultLang
}
