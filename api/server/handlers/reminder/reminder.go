package reminder

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/porter-dev/ams-assistant/api/server/config"
	"github.com/porter-dev/ams-assistant/api/server/shared"
	"github.com/porter-dev/ams-assistant/api/server/shared/apierrors"
	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/pkg/session"
)

// sessionID reads and validates the {session} URL parameter.
func sessionID(config *config.Config, w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "session")

	if !session.ValidID(id) {
		apierrors.HandleAPIError(config.Logger, w, r, apierrors.NewErrPassThroughToClient(
			fmt.Errorf("invalid session id %q", id),
			http.StatusBadRequest,
		), true)

		return "", false
	}

	return id, true
}

type ListRemindersHandler struct {
	resultWriter shared.ResultWriter
	config       *config.Config
}

func NewListRemindersHandler(config *config.Config) *ListRemindersHandler {
	return &ListRemindersHandler{
		resultWriter: shared.NewDefaultResultWriter(config.Logger),
		config:       config,
	}
}

func (h *ListRemindersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(h.config, w, r)

	if !ok {
		return
	}

	h.resultWriter.WriteResult(w, r, &types.ListRemindersResponse{
		SessionID: id,
		Reminders: h.config.Sessions.Reminders(id),
	})
}

// CreateReminderHandler appends a reminder and returns the session's list.
// Blank text is ignored and the unchanged list is returned.
type CreateReminderHandler struct {
	decoderValidator shared.RequestDecoderValidator
	resultWriter     shared.ResultWriter
	config           *config.Config
}

func NewCreateReminderHandler(config *config.Config) *CreateReminderHandler {
	return &CreateReminderHandler{
		decoderValidator: shared.NewDefaultRequestDecoderValidator(config.Logger),
		resultWriter:     shared.NewDefaultResultWriter(config.Logger),
		config:           config,
	}
}

func (h *CreateReminderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(h.config, w, r)

	if !ok {
		return
	}

	req := &types.CreateReminderRequest{}

	if ok := h.decoderValidator.DecodeAndValidate(w, r, req); !ok {
		return
	}

	if _, added := h.config.Sessions.AddReminder(id, req.Text); !added {
		h.config.Logger.Debug().Caller().Msgf("ignoring blank reminder for session %s", id)
	}

	h.resultWriter.WriteResult(w, r, &types.ListRemindersResponse{
		SessionID: id,
		Reminders: h.config.Sessions.Reminders(id),
	})
}
