package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"go_5_memory_game/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is required.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		slog.Debug("Error decoding JSON body", "error", err)
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is not valid JSON.", "", fmt.Errorf("%w: %w", model.ErrInvalidInput, err))
	}
	return nil
}

// DecodeAndValidate decodes the body into dst and runs the struct validation tags.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(r, dst); err != nil {
		return err
	}
	if err := Validator.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return NewValidationErrorResponse(verrs)
		}
		return model.NewAppError("VALIDATION_ERROR", err.Error(), "", model.ErrInvalidInput)
	}
	return nil
}

// URLParamUUID parses a chi URL parameter as a UUID.
func URLParamUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_PATH_PARAM", fmt.Sprintf("%s must be a UUID.", name), name, model.ErrInvalidInput)
	}
	return id, nil
}

// URLParamInt parses a chi URL parameter as a decimal integer.
func URLParamInt(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewAppError("INVALID_PATH_PARAM", fmt.Sprintf("%s must be an integer.", name), name, model.ErrInvalidInput)
	}
	return n, nil
}
