package dashboard

import (
	"net/http"

	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/api/server/shared"
	"github.com/porter-dev/ams-assistant/api/server/types"
	view "github.com/porter-dev/ams-assistant/pkg/dashboard"
)

type AddReminderHandler struct {
	decoderValidator shared.RequestDecoderValidator
	config           *config.Config
}

func NewAddReminderHandler(config *config.Config) *AddReminderHandler {
	return &AddReminderHandler{
		decoderValidator: shared.NewDefaultRequestDecoderValidator(config.Logger),
		config:           config,
	}
}

func (h *AddReminderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &types.DashboardReminderRequest{}

	if ok := h.decoderValidator.DecodeAndValidate(w, r, req); !ok {
		return
	}

	h.config.Sessions.AddReminder(req.SessionID, req.Text)

	writePage(h.config, w, r, http.StatusOK, &view.Page{SessionID: req.SessionID})
}
