package healthcheck

import (
	"fmt"
	"net/http"

	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/api/server/shared/apierrors"
)

type ReadyzHandler struct {
	config *config.Config
}

func NewReadyzHandler(config *config.Config) *ReadyzHandler {
	return &ReadyzHandler{
		config: config,
	}
}

func (h *ReadyzHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	db := h.config.Repository.DB

	// in-memory store
	if db == nil {
		writeHealthy(w)
		return
	}

	switch db.Dialector.Name() {
	case "sqlite":
		writeHealthy(w)
		return
	case "postgres":
		sqlDB, err := db.DB()

		if err != nil {
			apierrors.HandleAPIError(h.config.Logger, w, r, apierrors.NewErrInternal(err), true)
			return
		}

		if err := sqlDB.PingContext(r.Context()); err != nil {
			apierrors.HandleAPIError(h.config.Logger, w, r, apierrors.NewErrInternal(err), true)
			return
		}

		writeHealthy(w)
		return
	}

	apierrors.HandleAPIError(h.config.Logger, w, r, apierrors.NewErrPassThroughToClient(
		fmt.Errorf("database is not supported"),
		http.StatusBadRequest,
	), true)
}

func writeHealthy(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("."))
}
