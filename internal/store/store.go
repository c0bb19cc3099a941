package store

import (
	"context"
	"errors"
	"time"

	"github.com/nhle/kronaut/internal/model"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// HistoryFilter controls filtering and pagination for history queries.
// Results are always newest first.
type HistoryFilter struct {
	Outcome    *model.Outcome    // nil for all outcomes
	ActionType *model.ActionType // nil for all action types
	Since      *time.Time        // sessions ended at or after this time
	Limit      int
	Offset     int
}

// HistoryStore is the journal of finished timer sessions. Entries are
// append-only records; nothing here can resume a timer.
type HistoryStore interface {
	RecordSession(ctx context.Context, entry model.HistoryEntry) error
	GetSessions(ctx context.Context, filter HistoryFilter) ([]model.HistoryEntry, error)
	GetSessionByID(ctx context.Context, id string) (*model.HistoryEntry, error)
	CountByOutcome(ctx context.Context) (map[model.Outcome]int, error)
	DeleteSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	Close() error
}
