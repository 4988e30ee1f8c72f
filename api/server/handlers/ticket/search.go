package ticket

import (
	"errors"
	"net/http"

	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/api/server/shared"
	"github.com/porter-dev/ams-assistant/api/server/shared/apierrors"
	"github.com/porter-dev/ams-assistant/api/server/types"
	ticketpkg "github.com/porter-dev/ams-assistant/pkg/ticket"
)

type SearchTicketHandler struct {
	decoderValidator shared.RequestDecoderValidator
	resultWriter     shared.ResultWriter
	config           *config.Config
}

func NewSearchTicketHandler(config *config.Config) *SearchTicketHandler {
	return &SearchTicketHandler{
		decoderValidator: shared.NewDefaultRequestDecoderValidator(config.Logger),
		resultWriter:     shared.NewDefaultResultWriter(config.Logger),
		config:           config,
	}
}

func (h *SearchTicketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &types.SearchTicketRequest{}

	if ok := h.decoderValidator.DecodeAndValidate(w, r, req); !ok {
		return
	}

	t, err := h.config.Recommender.Search(r.Context(), req.Query)

	if err != nil {
		handleTicketError(h.config, w, r, err)
		return
	}

	h.resultWriter.WriteResult(w, r, t)
}

// handleTicketError maps lookup and analysis errors onto API errors.
func handleTicketError(config *config.Config, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ticketpkg.ErrTicketNotFound):
		apierrors.HandleAPIError(config.Logger, w, r, apierrors.NewErrPassThroughToClient(err, http.StatusNotFound), true)
	case errors.Is(err, ticketpkg.ErrSuperseded):
		apierrors.HandleAPIError(config.Logger, w, r, apierrors.NewErrPassThroughToClient(err, http.StatusConflict), true)
	default:
		apierrors.HandleAPIError(config.Logger, w, r, apierrors.NewErrInternal(err), true)
	}
}
