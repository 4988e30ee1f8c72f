package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/porter-dev/ams-assistant/api/server/shared/apierrors"
	"github.com/porter-dev/ams-assistant/internal/logger"
)

// RequestDecoderValidator decodes a request into a struct and validates it.
// Query and form values are decoded for GET and form posts, JSON bodies for
// everything else. On failure the error has already been written.
type RequestDecoderValidator interface {
	DecodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool
}

type DefaultRequestDecoderValidator struct {
	logger    *logger.Logger
	decoder   *schema.Decoder
	validator *validator.Validate
}

func NewDefaultRequestDecoderValidator(l *logger.Logger) RequestDecoderValidator {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	validate := validator.New()
	validate.SetTagName("form")

	return &DefaultRequestDecoderValidator{l, decoder, validate}
}

func (j *DefaultRequestDecoderValidator) DecodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := j.decode(r, v); err != nil {
		apierrors.HandleAPIError(j.logger, w, r, apierrors.NewErrPassThroughToClient(
			fmt.Errorf("could not decode request: %w", err),
			http.StatusBadRequest,
		), true)

		return false
	}

	if err := j.validator.Struct(v); err != nil {
		apierrors.HandleAPIError(j.logger, w, r, apierrors.NewErrPassThroughToClient(
			validationError(err),
			http.StatusBadRequest,
		), true)

		return false
	}

	return true
}

func (j *DefaultRequestDecoderValidator) decode(r *http.Request, v interface{}) error {
	if r.Method == http.MethodGet || isForm(r) {
		if err := r.ParseForm(); err != nil {
			return err
		}

		values := r.URL.Query()

		if isForm(r) {
			values = r.PostForm
		}

		return j.decoder.Decode(v, values)
	}

	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(v)

	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

func isForm(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors

	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))

	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("validation failed on field '%s' on condition '%s'", fe.Field(), fe.Tag()))
	}

	return errors.New(strings.Join(msgs, ", "))
}
