// Package apperrors holds caller-visible errors and their HTTP status codes.
package apperrors

import (
	"errors"
	"net/http"
)

// APIError is an error whose message is safe to return to the caller.
type APIError struct {
	HTTPCode int
	Message  string
}

func (e *APIError) Error() string {
	return e.Message
}

// As extracts an *APIError from err.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func NewErrValidation(message string) *APIError {
	return &APIError{HTTPCode: http.StatusBadRequest, Message: message}
}

func NewErrForbidden() *APIError {
	return &APIError{HTTPCode: http.StatusForbidden, Message: "Forbidden."}
}

func NewErrSessionNotFound() *APIError {
	return &APIError{HTTPCode: http.StatusNotFound, Message: "Session not found."}
}

func NewErrFileNotFound() *APIError {
	return &APIError{HTTPCode: http.StatusNotFound, Message: "File not found."}
}

func NewErrInvalidOrExpiredToken() *APIError {
	return &APIError{HTTPCode: http.StatusBadRequest, Message: "Invalid or expired token."}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{HTTPCode: http.StatusUnauthorized, Message: "Missing authorization token."}
}

func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{HTTPCode: http.StatusUnauthorized, Message: "Invalid authorization token."}
}

func NewErrRequestTooLarge() *APIError {
	return &APIError{HTTPCode: http.StatusRequestEntityTooLarge, Message: "Request body is too large."}
}

func NewErrInternalServerError() *APIError {
	return &APIError{HTTPCode: http.StatusInternalServerError, Message: "Internal server error."}
}

// NewErrStorage reports a failed object storage call with a classified reason.
func NewErrStorage(reason string) *APIError {
	return &APIError{HTTPCode: http.StatusBadGateway, Message: reason}
}
