package internal

import (
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	ErrorKindUnauthorized     ErrorKind = "UNAUTHORIZED"
	ErrorKindWrongCredentials ErrorKind = "WRONG_CREDENTIALS"
	ErrorKindQueryError       ErrorKind = "QUERY_ERROR"
	ErrorKindHashingError     ErrorKind = "HASHING_ERROR"
	ErrorKindValidation       ErrorKind = "VALIDATION_ERROR"
)

// AppError is the tagged error type every handler converts service failures
// into. The transport layer picks the HTTP status from StatusCode and puts
// Message into the response envelope's Error field.
type AppError struct {
	Kind       ErrorKind `json:"kind"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	return &AppError{
		Kind:       e.Kind,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Cause:      cause,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Kind:       ErrorKindUnauthorized,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewWrongCredentialsError(message string) *AppError {
	return &AppError{
		Kind:       ErrorKindWrongCredentials,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewQueryError(message string, cause error) *AppError {
	return &AppError{
		Kind:       ErrorKindQueryError,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func NewHashingError(message string, cause error) *AppError {
	return &AppError{
		Kind:       ErrorKindHashingError,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Kind:       ErrorKindValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

var (
	ErrNotAuthorized    = NewUnauthorizedError("You are not authorized")
	ErrWrongToken       = NewUnauthorizedError("Wrong token")
	ErrWrongCredentials = NewWrongCredentialsError("Wrong email or password")
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}
