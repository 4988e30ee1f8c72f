package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/api/server/shared"
	"github.com/porter-dev/ams-assistant/api/server/shared/apierrors"
	"github.com/porter-dev/ams-assistant/api/server/types"
	view "github.com/porter-dev/ams-assistant/pkg/dashboard"
)

type HealthCheckHandler struct {
	decoderValidator shared.RequestDecoderValidator
	config           *config.Config
}

func NewHealthCheckHandler(config *config.Config) *HealthCheckHandler {
	return &HealthCheckHandler{
		decoderValidator: shared.NewDefaultRequestDecoderValidator(config.Logger),
		config:           config,
	}
}

func (h *HealthCheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &types.DashboardRequest{}

	if ok := h.decoderValidator.DecodeAndValidate(w, r, req); !ok {
		return
	}

	report, err := h.config.HealthChecker.Run(r.Context())

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}

		apierrors.HandleAPIError(h.config.Logger, w, r, apierrors.NewErrInternal(err), true)
		return
	}

	h.config.Sessions.SetHealthReport(req.SessionID, report)

	writePage(h.config, w, r, http.StatusOK, &view.Page{SessionID: req.SessionID})
}
