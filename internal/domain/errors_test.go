package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	plain := NewAppError(CodeValidation, "bad input", nil)
	if plain.Error() != "bad input" {
		t.Errorf("Error()=%q; want bad input", plain.Error())
	}

	wrapped := NewAppError(CodeInternal, "database error", errors.New("disk full"))
	if wrapped.Error() != "database error: disk full" {
		t.Errorf("Error()=%q; want wrapped message", wrapped.Error())
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewAppError(CodeInternal, "wrapper", cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the wrapped cause")
	}
}

func TestCodeHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"sentinel not found", ErrNotFound, IsNotFound, true},
		{"fresh not found", NewAppError(CodeNotFound, "missing", nil), IsNotFound, true},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrNotFound), IsNotFound, true},
		{"different code", ErrValidation, IsNotFound, false},
		{"plain error", errors.New("boom"), IsNotFound, false},
		{"nil error", nil, IsNotFound, false},
		{"already exists", ErrAlreadyExists, IsAlreadyExists, true},
		{"validation", NewAppError(CodeValidation, "bad", nil), IsValidation, true},
		{"internal", ErrInternal, IsInternal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check(%v)=%v; want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"already exists", ErrAlreadyExists, http.StatusConflict},
		{"validation", ErrValidation, http.StatusBadRequest},
		{"internal", ErrInternal, http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("ctx: %w", ErrNotFound), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusCode(tt.err); got != tt.want {
				t.Errorf("HTTPStatusCode=%d; want %d", got, tt.want)
			}
		})
	}
}
