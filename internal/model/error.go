// internal/model/error.go
package model

import "errors"

// Application errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict")

	// ErrEmptyPool is returned when a round is requested from a pool without words.
	// It points at a configuration problem (no catalog, no stored statistics) and is not retried.
	ErrEmptyPool = errors.New("word pool is empty")
	// ErrStorageWrite wraps failures to persist the statistics snapshot.
	ErrStorageWrite = errors.New("statistics could not be saved")
	// ErrCorruptSnapshot is returned when a stored snapshot cannot be decoded.
	ErrCorruptSnapshot = errors.New("statistics snapshot is corrupt")
)

// AppError carries a client-facing code and message while keeping the cause for errors.Is.
type AppError struct {
	Detail ErrorDetail
	Err    error
}

// ErrorDetail is the body of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse is the JSON envelope for error responses.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Code + ": " + e.Detail.Message + ": " + e.Err.Error()
	}
	return e.Detail.Code + ": " + e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
