package model

import "time"

// Outcome records how a timer session ended.
type Outcome string

const (
	OutcomeCompleted  Outcome = "completed"
	OutcomeStopped    Outcome = "stopped"
	OutcomeAudioError Outcome = "audio_error"
	OutcomeLinkFailed Outcome = "link_failed"
)

// HistoryEntry is a finished timer session as kept in the history journal.
// It is a record of what happened, never a resumable timer.
type HistoryEntry struct {
	ID              string     `json:"id" db:"id"`
	SessionID       string     `json:"session_id" db:"session_id"`
	ActionType      ActionType `json:"action_type" db:"action_type"`
	Content         string     `json:"content" db:"content"`
	TaskKind        TaskKind   `json:"task_kind,omitempty" db:"task_kind"`
	DeepLink        string     `json:"deep_link,omitempty" db:"deep_link"`
	DurationSeconds int        `json:"duration_seconds" db:"duration_seconds"`
	Outcome         Outcome    `json:"outcome" db:"outcome"`
	StartedAt       time.Time  `json:"started_at" db:"started_at"`
	EndedAt         time.Time  `json:"ended_at" db:"ended_at"`
}
