package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/kronaut/internal/model"
	"github.com/nhle/kronaut/internal/taskcmd"
)

// minRemaining is the floor a reduction may not cross, in seconds.
const minRemaining = 60

// Session is the live state of one countdown. It has no I/O; the
// Controller drives it and performs the side effects.
type Session struct {
	ID            string
	Duration      model.Duration
	Action        model.Action
	TimeRemaining int
	Running       bool
	Paused        bool
	StartedAt     time.Time
}

// ValidateStart checks a draft duration and action the way the review step
// does before a session may be created.
func ValidateStart(d model.Duration, a model.Action) error {
	if err := ValidateDuration(d); err != nil {
		return err
	}
	return ValidateAction(a)
}

// ValidateDuration requires at least one minute within the picker's range.
func ValidateDuration(d model.Duration) error {
	if !d.Valid() {
		return &ValidationError{
			Field:   "duration",
			Message: fmt.Sprintf("hours must be 0-%d and minutes 0-%d", model.MaxHours, model.MaxMinutes),
			Err:     ErrDurationOutOfRange,
		}
	}
	if d.TotalMinutes() < 1 {
		return &ValidationError{
			Field:   "duration",
			Message: "Please set a timer duration of at least 1 minute.",
			Err:     ErrDurationTooShort,
		}
	}
	return nil
}

// ValidateAction requires content for announcements and tasks, and a
// parsable command for tasks.
func ValidateAction(a model.Action) error {
	switch a.Type {
	case model.ActionAlarm:
		return nil
	case model.ActionAnnouncement, model.ActionTask:
	default:
		return &ValidationError{
			Field:   "action",
			Message: fmt.Sprintf("unknown action type %q", a.Type),
			Err:     ErrUnknownAction,
		}
	}

	if strings.TrimSpace(a.Content) == "" {
		return &ValidationError{
			Field:   "content",
			Message: "Please enter content for your " + string(a.Type),
			Err:     ErrContentRequired,
		}
	}

	if a.Type == model.ActionTask && !taskcmd.Valid(a.Content) {
		return &ValidationError{
			Field:   "content",
			Message: invalidTaskMessage(),
			Err:     ErrInvalidTaskCommand,
		}
	}

	return nil
}

func invalidTaskMessage() string {
	examples := taskcmd.Examples()
	quoted := make([]string, len(examples))
	for i, ex := range examples {
		quoted[i] = fmt.Sprintf("%q", ex)
	}
	return "Invalid task command. Try: " + strings.Join(quoted, ", ")
}

// NewSession validates the draft and creates a running session with a
// snapshot of duration and action.
func NewSession(d model.Duration, a model.Action, now time.Time) (*Session, error) {
	if err := ValidateStart(d, a); err != nil {
		return nil, err
	}

	if a.Type == model.ActionTask {
		parsed, _ := taskcmd.Parse(a.Content)
		a.Parsed = parsed
	} else {
		a.Parsed = nil
	}

	return &Session{
		ID:            uuid.New().String(),
		Duration:      d,
		Action:        a,
		TimeRemaining: d.TotalSeconds(),
		Running:       true,
		StartedAt:     now,
	}, nil
}

// Tick removes one second. When that would reach zero the session stops
// running with TimeRemaining pinned at 0 and Tick reports true; this
// happens at most once per session.
func (s *Session) Tick() bool {
	if !s.Running || s.Paused {
		return false
	}
	if s.TimeRemaining-1 <= 0 {
		s.TimeRemaining = 0
		s.Running = false
		return true
	}
	s.TimeRemaining--
	return false
}

// TogglePause flips between running and paused.
func (s *Session) TogglePause() {
	s.Paused = !s.Paused
}

// Adjust adds or removes whole minutes. Reductions that would leave less
// than one minute are rejected and leave the session unchanged.
func (s *Session) Adjust(minutes int, add bool) error {
	if minutes <= 0 {
		return &ValidationError{
			Field:   "adjustment",
			Message: "Enter a positive number of minutes.",
			Err:     ErrInvalidAdjustment,
		}
	}

	delta := minutes * 60
	if add {
		s.TimeRemaining += delta
		return nil
	}

	if s.TimeRemaining-delta < minRemaining {
		return &ValidationError{
			Field:   "adjustment",
			Message: "You cannot reduce the timer to less than 1 minute.",
			Err:     ErrAdjustBelowFloor,
		}
	}
	s.TimeRemaining -= delta
	return nil
}

// Progress returns the remaining fraction of the original duration,
// clamped to [0, 1].
func (s *Session) Progress() float64 {
	total := s.Duration.TotalSeconds()
	if total <= 0 {
		return 0
	}
	p := float64(s.TimeRemaining) / float64(total)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}
