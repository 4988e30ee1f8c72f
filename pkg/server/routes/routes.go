package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/porter-dev/ams-assistant/api/server/config"
	alertHandlers "github.com/porter-dev/ams-assistant/api/server/handlers/alert"
	dashboardHandlers "github.com/porter-dev/ams-assistant/api/server/handlers/dashboard"
	healthcheckHandlers "github.com/porter-dev/ams-assistant/api/server/handlers/healthcheck"
	incidentHandlers "github.com/porter-dev/ams-assistant/api/server/handlers/incident"
	instanceHandlers "github.com/porter-dev/ams-assistant/api/server/handlers/instance"
	reminderHandlers "github.com/porter-dev/ams-assistant/api/server/handlers/reminder"
	ticketHandlers "github.com/porter-dev/ams-assistant/api/server/handlers/ticket"
)

func NewRouter(conf *config.Config) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/livez", healthcheckHandlers.NewLivezHandler(conf))
	r.Method(http.MethodGet, "/readyz", healthcheckHandlers.NewReadyzHandler(conf))

	r.Method(http.MethodGet, "/", dashboardHandlers.NewPageHandler(conf))

	r.Route("/dashboard", func(r chi.Router) {
		r.Method(http.MethodPost, "/analyze", dashboardHandlers.NewAnalyzeHandler(conf))
		r.Method(http.MethodPost, "/healthcheck", dashboardHandlers.NewHealthCheckHandler(conf))
		r.Method(http.MethodPost, "/reminders", dashboardHandlers.NewAddReminderHandler(conf))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Method(http.MethodGet, "/tickets", ticketHandlers.NewListTicketsHandler(conf))
		r.Method(http.MethodGet, "/tickets/search", ticketHandlers.NewSearchTicketHandler(conf))
		r.Method(http.MethodPost, "/tickets/analyze", ticketHandlers.NewAnalyzeTicketHandler(conf))

		r.Method(http.MethodGet, "/incidents", incidentHandlers.NewListPastIncidentsHandler(conf))

		r.Method(http.MethodGet, "/instances", instanceHandlers.NewListInstancesHandler(conf))
		r.Method(http.MethodPost, "/healthcheck", instanceHandlers.NewRunHealthCheckHandler(conf))
		r.Method(http.MethodGet, "/healthcheck/latest", instanceHandlers.NewGetLatestHealthCheckHandler(conf))

		r.Method(http.MethodGet, "/alerts", alertHandlers.NewListLogAlertsHandler(conf))

		r.Method(http.MethodGet, "/sessions/{session}/reminders", reminderHandlers.NewListRemindersHandler(conf))
		r.Method(http.MethodPost, "/sessions/{session}/reminders", reminderHandlers.NewCreateReminderHandler(conf))
	})

	return r
}
