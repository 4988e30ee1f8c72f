package instance

import (
	"net/http"

	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/api/server/shared"
	"github.com/porter-dev/ams-assistant/api/server/shared/apierrors"
	"github.com/porter-dev/ams-assistant/api/server/types"
)

type ListInstancesHandler struct {
	resultWriter shared.ResultWriter
	config       *config.Config
}

func NewListInstancesHandler(config *config.Config) *ListInstancesHandler {
	return &ListInstancesHandler{
		resultWriter: shared.NewDefaultResultWriter(config.Logger),
		config:       config,
	}
}

func (h *ListInstancesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	instances, err := h.config.Repository.Instance.ListInstances(r.Context())

	if err != nil {
		apierrors.HandleAPIError(h.config.Logger, w, r, apierrors.NewErrInternal(err), true)
		return
	}

	h.resultWriter.WriteResult(w, r, &types.ListInstancesResponse{
		Instances: instances,
	})
}
