package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestAs(t *testing.T) {
	t.Parallel()

	cause := errors.New("unknown mode \"9\"")
	wrapped := fmt.Errorf("failed to read mode: %w", InvalidChoice(cause))

	got := As(wrapped)
	if got == nil {
		t.Fatal("As() = nil, want *Error")
	}
	if got.Code != CodeInvalidChoice {
		t.Errorf("Code = %q, want %q", got.Code, CodeInvalidChoice)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is(wrapped, cause) = false, want true")
	}
	if As(cause) != nil {
		t.Error("As(plain error) != nil")
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *Error
		message  string
		exitCode int
	}{
		{name: "color", err: InvalidColor(nil), message: "Invalid color.", exitCode: 1},
		{name: "choice", err: InvalidChoice(nil), message: "Invalid choice.", exitCode: 0},
		{name: "timezone", err: InvalidTimezone(nil), message: "Invalid time zone.", exitCode: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Message != tt.message {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.message)
			}
			if tt.err.ExitCode != tt.exitCode {
				t.Errorf("ExitCode = %d, want %d", tt.err.ExitCode, tt.exitCode)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.message)
			}
		})
	}
}

func TestError_WithCause(t *testing.T) {
	t.Parallel()

	err := InvalidTimezone(errors.New("unknown time zone Mars/Base"))
	if got, want := err.Error(), "Invalid time zone.: unknown time zone Mars/Base"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
