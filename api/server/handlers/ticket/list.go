package ticket

import (
	"net/http"

	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/api/server/shared"
	"github.com/porter-dev/ams-assistant/api/server/shared/apierrors"
	"github.com/porter-dev/ams-assistant/api/server/types"
)

type ListTicketsHandler struct {
	resultWriter shared.ResultWriter
	config       *config.Config
}

func NewListTicketsHandler(config *config.Config) *ListTicketsHandler {
	return &ListTicketsHandler{
		resultWriter: shared.NewDefaultResultWriter(config.Logger),
		config:       config,
	}
}

func (h *ListTicketsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.config.Repository.Ticket.ListTickets(r.Context())

	if err != nil {
		apierrors.HandleAPIError(h.config.Logger, w, r, apierrors.NewErrInternal(err), true)
		return
	}

	h.resultWriter.WriteResult(w, r, &types.ListTicketsResponse{
		Tickets: tickets,
	})
}
