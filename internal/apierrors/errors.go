// Package apierrors defines the error taxonomy carried from services to the
// HTTP boundary: each error knows its status class and a short localized
// message safe to show to users. Anything else becomes a generic 500.
package apierrors

import "net/http"

// APIError is an error with an HTTP status and a user-facing message.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// NewValidation returns a 400 validation error with the given message.
func NewValidation(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NewUnauthenticated returns a 401 authentication error.
func NewUnauthenticated() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "Não autorizado"}
}

// NewForbidden returns a 403 authorization error with the given message.
func NewForbidden(message string) *APIError {
	return &APIError{Status: http.StatusForbidden, Message: message}
}

// NewNotFound returns a 404 error with the given message.
func NewNotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}
