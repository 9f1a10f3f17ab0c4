package apperr

import (
	"errors"
)

const (
	CodeInvalidColor    = "invalid_color"
	CodeInvalidChoice   = "invalid_choice"
	CodeInvalidTimezone = "invalid_timezone"
)

// Error is a failure reported to the user as a single console line.
// ExitCode is the process status once the message has been printed.
type Error struct {
	Code     string
	Message  string
	ExitCode int
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// InvalidColor is returned when the color string cannot be sliced into channels.
func InvalidColor(cause error) *Error {
	return &Error{Code: CodeInvalidColor, Message: "Invalid color.", ExitCode: 1, Cause: cause}
}

func InvalidChoice(cause error) *Error {
	return &Error{Code: CodeInvalidChoice, Message: "Invalid choice.", ExitCode: 0, Cause: cause}
}

func InvalidTimezone(cause error) *Error {
	return &Error{Code: CodeInvalidTimezone, Message: "Invalid time zone.", ExitCode: 0, Cause: cause}
}

func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
