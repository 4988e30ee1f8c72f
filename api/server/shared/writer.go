package shared

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/porter-dev/ams-assistant/internal/logger"
)

// ResultWriter writes a handler result back to the client.
type ResultWriter interface {
	WriteResult(w http.ResponseWriter, r *http.Request, v interface{})
}

type DefaultResultWriter struct {
	logger *logger.Logger
}

func NewDefaultResultWriter(l *logger.Logger) ResultWriter {
	return &DefaultResultWriter{l}
}

func (j *DefaultResultWriter) WriteResult(w http.ResponseWriter, r *http.Request, v interface{}) {
	render.JSON(w, r, v)
}
