package banner

import (
	"net/http"

	"github.com/dmitrymomot/consentkit/pkg/consent"
	"github.com/dmitrymomot/consentkit/pkg/logger"
	"github.com/dmitrymomot/consentkit/pkg/response"
)

// ChangedEvent is the name of the event emitted after every stored decision.
const ChangedEvent = "cookieConsent:changed"

// State describes what a banner needs to render for the current visitor.
type State struct {
	ShowBanner  bool               `json:"show_banner"`
	Preferences map[string]bool    `json:"preferences"`
	Categories  []consent.Category `json:"categories"`
}

// Event is the body of every write action.
type Event struct {
	Event       string         `json:"event"`
	Preferences map[string]any `json:"preferences"`
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, resp response.Response) {
	if err := resp.Render(w, r); err != nil {
		h.log.WarnContext(r.Context(), "failed to write response", logger.Error(err))
	}
}
