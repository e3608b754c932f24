package banner

import (
	"html/template"
	"net/http"

	"github.com/dmitrymomot/consentkit/pkg/consent"
)

// TemplateFuncs exposes the visitor's stored consent to templates:
//
//	{{ if has_consent_for "analytics" }}<script src="/a.js"></script>{{ end }}
//
// has_consent_for reads the stored value as is, so a required category the
// visitor never saved reports false. Use Service.IsCategoryAllowed for
// gating decisions that must honor required categories.
func TemplateFuncs(svc *consent.Service, r *http.Request) template.FuncMap {
	req := consent.FromHTTP(r)
	return template.FuncMap{
		"consent_preferences": func() map[string]any {
			return svc.RawPreferences(req)
		},
		"has_consent": func() bool {
			return svc.HasConsent(req)
		},
		"has_consent_for": func(key string) bool {
			return svc.Record(req).Allowed(key)
		},
	}
}
