package alert

import (
	"net/http"

	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/api/server/shared"
	"github.com/porter-dev/ams-assistant/api/server/shared/apierrors"
	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/internal/utils"
)

type ListLogAlertsHandler struct {
	decoderValidator shared.RequestDecoderValidator
	resultWriter     shared.ResultWriter
	config           *config.Config
}

func NewListLogAlertsHandler(config *config.Config) *ListLogAlertsHandler {
	return &ListLogAlertsHandler{
		decoderValidator: shared.NewDefaultRequestDecoderValidator(config.Logger),
		resultWriter:     shared.NewDefaultResultWriter(config.Logger),
		config:           config,
	}
}

func (h *ListLogAlertsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &types.ListLogAlertsRequest{}

	if ok := h.decoderValidator.DecodeAndValidate(w, r, req); !ok {
		return
	}

	filter := &utils.ListLogAlertsFilter{}

	if req.InstanceID != "" {
		filter.InstanceID = &req.InstanceID
	}

	if req.Type != "" {
		alertType := types.AlertType(req.Type)
		filter.Type = &alertType
	}

	alerts, err := h.config.Repository.LogAlert.ListLogAlerts(r.Context(), filter)

	if err != nil {
		apierrors.HandleAPIError(h.config.Logger, w, r, apierrors.NewErrInternal(err), true)
		return
	}

	h.resultWriter.WriteResult(w, r, &types.ListLogAlertsResponse{
		Alerts: alerts,
	})
}
