package apierrors

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/porter-dev/ams-assistant/internal/logger"
)

// RequestError is an error that carries a message for the client, a message
// for the logs, and the HTTP status to answer with.
type RequestError interface {
	Error() string
	ExternalError() string
	InternalError() string
	GetStatusCode() int
}

type ErrInternal struct {
	err error
}

// NewErrInternal wraps err so that the client only sees a generic message.
func NewErrInternal(err error) RequestError {
	return &ErrInternal{err}
}

func (e *ErrInternal) Error() string {
	return e.err.Error()
}

func (e *ErrInternal) InternalError() string {
	return e.err.Error()
}

func (e *ErrInternal) ExternalError() string {
	return "An internal error occurred."
}

func (e *ErrInternal) GetStatusCode() int {
	return http.StatusInternalServerError
}

func (e *ErrInternal) Unwrap() error {
	return e.err
}

type ErrPassThroughToClient struct {
	err        error
	statusCode int
}

// NewErrPassThroughToClient returns an error whose message is safe to show
// to the client as-is.
func NewErrPassThroughToClient(err error, statusCode int) RequestError {
	return &ErrPassThroughToClient{err, statusCode}
}

func (e *ErrPassThroughToClient) Error() string {
	return e.err.Error()
}

func (e *ErrPassThroughToClient) InternalError() string {
	return e.err.Error()
}

func (e *ErrPassThroughToClient) ExternalError() string {
	return e.err.Error()
}

func (e *ErrPassThroughToClient) GetStatusCode() int {
	return e.statusCode
}

func (e *ErrPassThroughToClient) Unwrap() error {
	return e.err
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleAPIError logs err and, when writeErr is set, writes the external
// message with the error's status code.
func HandleAPIError(
	l *logger.Logger,
	w http.ResponseWriter,
	r *http.Request,
	err RequestError,
	writeErr bool,
) {
	event := l.Warn()

	if err.GetStatusCode() >= http.StatusInternalServerError {
		event = l.Error()
	}

	event.
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", err.GetStatusCode()).
		Msg(err.InternalError())

	if !writeErr {
		return
	}

	render.Status(r, err.GetStatusCode())
	render.JSON(w, r, &ErrorResponse{Error: err.ExternalError()})
}
