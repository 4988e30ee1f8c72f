package instance

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/api/server/shared"
	"github.com/porter-dev/ams-assistant/api/server/shared/apierrors"
)

// RunHealthCheckHandler runs a health check over all instances and returns
// the report.
type RunHealthCheckHandler struct {
	resultWriter shared.ResultWriter
	config       *config.Config
}

func NewRunHealthCheckHandler(config *config.Config) *RunHealthCheckHandler {
	return &RunHealthCheckHandler{
		resultWriter: shared.NewDefaultResultWriter(config.Logger),
		config:       config,
	}
}

func (h *RunHealthCheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report, err := h.config.HealthChecker.Run(r.Context())

	if err != nil {
		if errors.Is(err, context.Canceled) {
			// client went away
			return
		}

		apierrors.HandleAPIError(h.config.Logger, w, r, apierrors.NewErrInternal(err), true)
		return
	}

	h.resultWriter.WriteResult(w, r, report)
}

type GetLatestHealthCheckHandler struct {
	resultWriter shared.ResultWriter
	config       *config.Config
}

func NewGetLatestHealthCheckHandler(config *config.Config) *GetLatestHealthCheckHandler {
	return &GetLatestHealthCheckHandler{
		resultWriter: shared.NewDefaultResultWriter(config.Logger),
		config:       config,
	}
}

func (h *GetLatestHealthCheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report := h.config.HealthChecker.Latest()

	if report == nil {
		apierrors.HandleAPIError(h.config.Logger, w, r, apierrors.NewErrPassThroughToClient(
			fmt.Errorf("no health check has run yet"),
			http.StatusNotFound,
		), true)

		return
	}

	h.resultWriter.WriteResult(w, r, report)
}
