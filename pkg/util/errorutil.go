package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes drive both the HTTP status and the JSON body shape a
// failure is rendered with. The token-validation layer reports a bare
// msg field while resource errors carry a success boolean; that
// asymmetry is part of the wire contract.
const (
	CodeMissingToken       = "AUTH_MISSING_TOKEN"
	CodeTokenExpired       = "AUTH_TOKEN_EXPIRED"
	CodeTokenDecode        = "AUTH_TOKEN_DECODE"
	CodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	CodeForbidden          = "FORBIDDEN"
	CodeValidation         = "VALIDATION_FAILED"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

func NewMissingToken(message string) error {
	return NewDomainError(CodeMissingToken, message, http.StatusUnauthorized)
}

func NewTokenExpired() error {
	return NewDomainError(CodeTokenExpired, "Token has expired", http.StatusUnauthorized)
}

func NewTokenDecode(message string) error {
	return NewDomainError(CodeTokenDecode, message, http.StatusUnprocessableEntity)
}

func NewInvalidCredentials() error {
	return NewDomainError(CodeInvalidCredentials, "Invalid username or password", http.StatusUnauthorized)
}

func NewForbidden() error {
	return NewDomainError(CodeForbidden, "Access forbidden.", http.StatusForbidden)
}

func NewValidationError(message string) error {
	return NewDomainError(CodeValidation, message, http.StatusBadRequest)
}

func NewNotFound(resource string) error {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// NewInternalError wraps a persistence failure. The underlying cause is
// passed through to the response body.
func NewInternalError(err error) error {
	message := "internal server error"
	if err != nil {
		message = err.Error()
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
