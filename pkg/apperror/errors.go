package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"fields,omitempty"` // per-field validation messages keyed by JSON path
	HTTPStatus int               `json:"-"`
	Err        error             `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a generic bad-request error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidJSON() *AppError {
	return New("VAL_002", "Invalid JSON body", http.StatusBadRequest)
}

// ErrValidationFailed carries per-field messages.
func ErrValidationFailed(fields map[string]string) *AppError {
	e := New("VALIDATION_FAILED", "Validation failed", http.StatusBadRequest)
	e.Fields = fields
	return e
}

func ErrMissingIdentifiers() *AppError {
	return New("VAL_003", "payment_id and companyId are required", http.StatusBadRequest)
}

// ---- Access (AUTH) ----

func ErrForbidden() *AppError {
	return New("AUTH_001", "Forbidden", http.StatusForbidden)
}

// ---- Configuration (CFG) ----

func ErrNotFound() *AppError {
	return New("CFG_001", "Not found", http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Too many requests", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrSaveFailed(err error) *AppError {
	return Wrap("SYS_002", "Unable to save configuration", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_000 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_000", "Internal server error", http.StatusInternalServerError, err)
}
