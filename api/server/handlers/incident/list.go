package incident

import (
	"net/http"

	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/api/server/shared"
	"github.com/porter-dev/ams-assistant/api/server/shared/apierrors"
	"github.com/porter-dev/ams-assistant/api/server/types"
)

// ListPastIncidentsHandler serves the knowledge base of past incidents.
type ListPastIncidentsHandler struct {
	resultWriter shared.ResultWriter
	config       *config.Config
}

func NewListPastIncidentsHandler(config *config.Config) *ListPastIncidentsHandler {
	return &ListPastIncidentsHandler{
		resultWriter: shared.NewDefaultResultWriter(config.Logger),
		config:       config,
	}
}

func (h ListPastIncidentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.config.Repository.PastIncident.ListPastIncidents(r.Context())

	if err != nil {
		apierrors.HandleAPIError(h.config.Logger, w, r, apierrors.NewErrInternal(err), true)
		return
	}

	h.resultWriter.WriteResult(w, r, &types.ListPastIncidentsResponse{
		Incidents: incidents,
	})
}
