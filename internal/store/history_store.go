package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/kronaut/internal/model"
)

// RecordSession appends a finished session. An empty ID is filled in.
// Recording the same SessionID twice is an error.
func (s *SQLiteStore) RecordSession(ctx context.Context, entry model.HistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	const query = `
		INSERT INTO sessions (
			id, session_id, action_type, content,
			task_kind, deep_link, duration_seconds, outcome,
			started_at, ended_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID, entry.SessionID, string(entry.ActionType), entry.Content,
		string(entry.TaskKind), entry.DeepLink, entry.DurationSeconds, string(entry.Outcome),
		entry.StartedAt.UTC(), entry.EndedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording session %s: %w", entry.SessionID, err)
	}
	return nil
}

// GetSessions returns history entries matching filter, newest first.
func (s *SQLiteStore) GetSessions(
	ctx context.Context,
	filter HistoryFilter,
) ([]model.HistoryEntry, error) {
	var conditions []string
	var args []interface{}

	if filter.Outcome != nil {
		conditions = append(conditions, "outcome = ?")
		args = append(args, string(*filter.Outcome))
	}
	if filter.ActionType != nil {
		conditions = append(conditions, "action_type = ?")
		args = append(args, string(*filter.ActionType))
	}
	if filter.Since != nil {
		conditions = append(conditions, "ended_at >= ?")
		args = append(args, filter.Since.UTC())
	}

	query := "SELECT * FROM sessions"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY ended_at DESC, id"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
		if filter.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", filter.Offset)
		}
	} else if filter.Offset > 0 {
		query += fmt.Sprintf(" LIMIT -1 OFFSET %d", filter.Offset)
	}

	var entries []model.HistoryEntry
	if err := s.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	return entries, nil
}

// GetSessionByID looks an entry up by its row ID or by the timer session ID.
func (s *SQLiteStore) GetSessionByID(ctx context.Context, id string) (*model.HistoryEntry, error) {
	var entry model.HistoryEntry
	err := s.db.GetContext(ctx, &entry,
		"SELECT * FROM sessions WHERE id = ? OR session_id = ? LIMIT 1", id, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("getting session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting session %s: %w", id, err)
	}
	return &entry, nil
}

// CountByOutcome returns the number of recorded sessions per outcome.
func (s *SQLiteStore) CountByOutcome(ctx context.Context) (map[model.Outcome]int, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT outcome, COUNT(*) FROM sessions GROUP BY outcome")
	if err != nil {
		return nil, fmt.Errorf("counting sessions: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.Outcome]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("scanning session count: %w", err)
		}
		counts[model.Outcome(outcome)] = n
	}
	return counts, rows.Err()
}

// DeleteSessionsBefore prunes entries that ended before cutoff and returns
// how many were removed.
func (s *SQLiteStore) DeleteSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE ended_at < ?", cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("pruning sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("pruning sessions: %w", err)
	}
	return n, nil
}

// Prune applies a retention window in days. Zero or negative keeps
// everything.
func (s *SQLiteStore) Prune(ctx context.Context, retentionDays int, now time.Time) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	return s.DeleteSessionsBefore(ctx, now.AddDate(0, 0, -retentionDays))
}
