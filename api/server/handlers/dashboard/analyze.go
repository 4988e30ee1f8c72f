package dashboard

import (
	"errors"
	"net/http"

	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/api/server/shared"
	"github.com/porter-dev/ams-assistant/api/server/shared/apierrors"
	"github.com/porter-dev/ams-assistant/api/server/types"
	view "github.com/porter-dev/ams-assistant/pkg/dashboard"
	"github.com/porter-dev/ams-assistant/pkg/ticket"
)

type AnalyzeHandler struct {
	decoderValidator shared.RequestDecoderValidator
	config           *config.Config
}

func NewAnalyzeHandler(config *config.Config) *AnalyzeHandler {
	return &AnalyzeHandler{
		decoderValidator: shared.NewDefaultRequestDecoderValidator(config.Logger),
		config:           config,
	}
}

func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &types.DashboardAnalyzeRequest{}

	if ok := h.decoderValidator.DecodeAndValidate(w, r, req); !ok {
		return
	}

	page := &view.Page{
		SessionID: req.SessionID,
		Query:     req.Query,
	}

	analysis, err := h.config.Recommender.Analyze(r.Context(), req.SessionID, req.Query)

	switch {
	case err == nil:
		h.config.Sessions.SetAnalysis(req.SessionID, analysis)
	case errors.Is(err, ticket.ErrTicketNotFound):
		h.config.Sessions.SetAnalysis(req.SessionID, nil)
		page.Notice = view.NoticeTicketNotFound
	case errors.Is(err, ticket.ErrSuperseded):
		writePage(h.config, w, r, http.StatusConflict, page)
		return
	default:
		apierrors.HandleAPIError(h.config.Logger, w, r, apierrors.NewErrInternal(err), true)
		return
	}

	writePage(h.config, w, r, http.StatusOK, page)
}
