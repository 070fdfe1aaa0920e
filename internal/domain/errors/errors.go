package errors

import (
	"errors"
	"net/http"
	"strings"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownMethod      = errors.New("unknown payout method")
	ErrPersistence        = errors.New("persistence failure")
)

// Error codes returned to clients
const (
	CodeNotFound      = "ERR_NOT_FOUND"
	CodeInvalidInput  = "ERR_INVALID_INPUT"
	CodeValidation    = "ERR_VALIDATION"
	CodeUnauthorized  = "ERR_UNAUTHORIZED"
	CodeInternalError = "ERR_INTERNAL"
)

// AppError represents an application error with its HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound builds a 404 error
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

// BadRequest builds a 400 error
func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidInput, message, ErrInvalidInput)
}

// Unauthorized builds a 401 error
func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrInvalidCredentials)
}

// InternalError wraps an unexpected error as a 500
func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}

// Validation builds a 400 error listing the missing fields
func Validation(missing []string) *AppError {
	return NewAppError(
		http.StatusBadRequest,
		CodeValidation,
		"missing required fields: "+strings.Join(missing, ", "),
		ErrInvalidInput,
	)
}
