package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-specific error with a code and message.
// The closed set of codes below is the only error vocabulary that crosses
// package boundaries; the HTTP layer maps each code to a transport status.
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

var (
	// ErrInvalidInput covers missing or malformed caller input
	ErrInvalidInput = &DomainError{
		Code:    "INVALID_INPUT",
		Message: "invalid input",
	}

	// ErrUnauthorized covers credential mismatches and missing sessions.
	// It never distinguishes which credential field was wrong.
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "unauthorized",
	}

	// ErrAuthNotConfigured means the admin credentials are not set; an
	// operator-fixable but request-fatal condition
	ErrAuthNotConfigured = &DomainError{
		Code:    "AUTH_NOT_CONFIGURED",
		Message: "authentication is not configured",
	}

	// ErrUpstreamFailed covers non-success upstream responses, network
	// failures, and decode failures. Upstream detail stays in logs.
	ErrUpstreamFailed = &DomainError{
		Code:    "UPSTREAM_FAILED",
		Message: "upstream request failed",
	}
)

// WrapInvalidInput wraps a validation failure with a specific message
func WrapInvalidInput(message string) error {
	return &DomainError{
		Code:    ErrInvalidInput.Code,
		Message: message,
	}
}

// WrapUpstreamFailed wraps an upstream failure for an operation
func WrapUpstreamFailed(operation string, cause error) error {
	return &DomainError{
		Code:    ErrUpstreamFailed.Code,
		Message: fmt.Sprintf("upstream request failed: %s", operation),
		Cause:   cause,
	}
}

// IsInvalidInput checks if an error is a client input error
func IsInvalidInput(err error) bool {
	return hasCode(err, ErrInvalidInput.Code)
}

// IsUnauthorized checks if an error is an authorization error
func IsUnauthorized(err error) bool {
	return hasCode(err, ErrUnauthorized.Code)
}

// IsAuthNotConfigured checks if an error is a configuration error
func IsAuthNotConfigured(err error) bool {
	return hasCode(err, ErrAuthNotConfigured.Code)
}

// IsUpstreamFailure checks if an error is an upstream failure
func IsUpstreamFailure(err error) bool {
	return hasCode(err, ErrUpstreamFailed.Code)
}

func hasCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
