package errorsx

import (
	"errors"
	"net/http"
	"testing"
)

func TestWrap(t *testing.T) {
	base := errors.New("boom")

	wrapped := Wrap(base, "context")
	if wrapped == nil {
		t.Fatal("Wrap returned nil for a non-nil error")
	}
	if wrapped.Error() != "context: boom" {
		t.Errorf("Wrap message = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("Wrap should preserve the error chain")
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	base := ErrNotFound

	wrapped := Wrapf(base, "activity %d", 42)
	if wrapped.Error() != "activity 42: resource not found" {
		t.Errorf("Wrapf message = %q", wrapped.Error())
	}
	if !IsNotFound(wrapped) {
		t.Error("Wrapf should preserve the error chain")
	}

	if Wrapf(nil, "activity %d", 42) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: http.StatusOK},
		{name: "not found", err: ErrNotFound, expected: http.StatusNotFound},
		{name: "invalid input", err: ErrInvalidInput, expected: http.StatusBadRequest},
		{name: "unauthorized", err: ErrUnauthorized, expected: http.StatusUnauthorized},
		{name: "timeout", err: ErrTimeout, expected: http.StatusGatewayTimeout},
		{name: "unavailable", err: ErrUnavailable, expected: http.StatusServiceUnavailable},
		{name: "wrapped sentinel", err: Wrap(ErrNotFound, "activity"), expected: http.StatusNotFound},
		{name: "unknown error", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToHTTPStatus(tt.err); got != tt.expected {
				t.Errorf("ToHTTPStatus(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
