package timer

import (
	"errors"
	"fmt"
)

// Validation causes. Wrapped in a *ValidationError; match with errors.Is.
var (
	ErrDurationTooShort   = errors.New("duration must be at least 1 minute")
	ErrDurationOutOfRange = errors.New("duration out of range")
	ErrContentRequired    = errors.New("content is required")
	ErrInvalidTaskCommand = errors.New("invalid task command")
	ErrUnknownAction      = errors.New("unknown action type")
	ErrInvalidAdjustment  = errors.New("adjustment must be at least 1 minute")
	ErrAdjustBelowFloor   = errors.New("cannot reduce the timer below 1 minute")
)

// Phase errors.
var (
	ErrSessionActive = errors.New("a timer session is already active")
	ErrNoSession     = errors.New("no active timer session")
	ErrWrongPhase    = errors.New("operation not allowed in current phase")
)

// ValidationError is returned synchronously when user input cannot start
// or adjust a session. The session is left untouched.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err (or any error in its chain) is a
// ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// DispatchKind names the side effect that failed during completion.
type DispatchKind string

const (
	DispatchSpeech    DispatchKind = "speech"
	DispatchOpenURL   DispatchKind = "open_url"
	DispatchClipboard DispatchKind = "clipboard"
)

// DispatchError reports a failed completion side effect. It is always
// recoverable: the controller parks in a phase with a route back to idle.
type DispatchError struct {
	Kind DispatchKind
	URL  string
	Err  error
}

func (e *DispatchError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("dispatch %s (%s): %v", e.Kind, e.URL, e.Err)
	}
	return fmt.Sprintf("dispatch %s: %v", e.Kind, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// IsDispatchError reports whether err (or any error in its chain) is a
// DispatchError.
func IsDispatchError(err error) bool {
	var dErr *DispatchError
	return errors.As(err, &dErr)
}
