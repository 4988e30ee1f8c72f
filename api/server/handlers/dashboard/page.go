package dashboard

import (
	"bytes"
	"net/http"

	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/api/server/shared/apierrors"
	view "github.com/porter-dev/ams-assistant/pkg/dashboard"
	"github.com/porter-dev/ams-assistant/pkg/session"
)

// writePage renders the dashboard for a session. The page is rendered into a
// buffer first so a template error still produces a clean error response.
func writePage(config *config.Config, w http.ResponseWriter, r *http.Request, status int, page *view.Page) {
	snap := config.Sessions.Snapshot(page.SessionID)

	page.Analysis = snap.Analysis
	page.HealthReport = snap.HealthReport
	page.Reminders = snap.Reminders

	alerts, err := config.Repository.LogAlert.ListLogAlerts(r.Context(), nil)

	if err != nil {
		apierrors.HandleAPIError(config.Logger, w, r, apierrors.NewErrInternal(err), true)
		return
	}

	page.Alerts = alerts

	var buf bytes.Buffer

	if err := config.Dashboard.Render(&buf, page); err != nil {
		apierrors.HandleAPIError(config.Logger, w, r, apierrors.NewErrInternal(err), true)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// PageHandler serves a fresh dashboard. Every render starts a new session,
// so reloading the page clears reminders and results.
type PageHandler struct {
	config *config.Config
}

func NewPageHandler(config *config.Config) *PageHandler {
	return &PageHandler{config}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writePage(h.config, w, r, http.StatusOK, &view.Page{
		SessionID: session.NewID(),
	})
}
