package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	err := &DomainError{Code: "UPSTREAM_FAILED", Message: "upstream request failed"}
	if got := err.Error(); got != "UPSTREAM_FAILED: upstream request failed" {
		t.Errorf("Error() = %q", got)
	}

	cause := errors.New("connection refused")
	wrapped := &DomainError{Code: "UPSTREAM_FAILED", Message: "upstream request failed", Cause: cause}
	if got := wrapped.Error(); got != "UPSTREAM_FAILED: upstream request failed: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := WrapUpstreamFailed("list repositories", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
}

func TestErrorKindChecks(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{name: "invalid input", err: WrapInvalidInput("username cannot be empty"), check: IsInvalidInput, want: true},
		{name: "unauthorized", err: ErrUnauthorized, check: IsUnauthorized, want: true},
		{name: "not configured", err: ErrAuthNotConfigured, check: IsAuthNotConfigured, want: true},
		{name: "upstream", err: WrapUpstreamFailed("fetch readme", errors.New("x")), check: IsUpstreamFailure, want: true},
		{name: "wrapped once more", err: fmt.Errorf("handler: %w", ErrUnauthorized), check: IsUnauthorized, want: true},
		{name: "wrong kind", err: ErrUnauthorized, check: IsUpstreamFailure, want: false},
		{name: "plain error", err: errors.New("boom"), check: IsUpstreamFailure, want: false},
		{name: "nil", err: nil, check: IsUnauthorized, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check = %v, want %v", got, tt.want)
			}
		})
	}
}
