package ticket

import (
	"net/http"

	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/api/server/shared"
	"github.com/porter-dev/ams-assistant/api/server/types"
)

type AnalyzeTicketHandler struct {
	decoderValidator shared.RequestDecoderValidator
	resultWriter     shared.ResultWriter
	config           *config.Config
}

func NewAnalyzeTicketHandler(config *config.Config) *AnalyzeTicketHandler {
	return &AnalyzeTicketHandler{
		decoderValidator: shared.NewDefaultRequestDecoderValidator(config.Logger),
		resultWriter:     shared.NewDefaultResultWriter(config.Logger),
		config:           config,
	}
}

func (h *AnalyzeTicketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &types.AnalyzeTicketRequest{}

	if ok := h.decoderValidator.DecodeAndValidate(w, r, req); !ok {
		return
	}

	analysis, err := h.config.Recommender.Analyze(r.Context(), req.SessionID, req.Query)

	if err != nil {
		handleTicketError(h.config, w, r, err)
		return
	}

	h.resultWriter.WriteResult(w, r, analysis)
}
