package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/kronaut/internal/model"
	"github.com/nhle/kronaut/internal/store"
	"github.com/nhle/kronaut/internal/testutil"
)

var base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func entry(sessionID string, action model.ActionType, outcome model.Outcome, endedAfter time.Duration) model.HistoryEntry {
	return model.HistoryEntry{
		SessionID:       sessionID,
		ActionType:      action,
		DurationSeconds: 300,
		Outcome:         outcome,
		StartedAt:       base,
		EndedAt:         base.Add(endedAfter),
	}
}

func TestRecordAndGetSession(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	e := entry("sess-1", model.ActionTask, model.OutcomeCompleted, 5*time.Minute)
	e.Content = "Call Mom"
	e.TaskKind = model.TaskCall
	e.DeepLink = "tel:mom"
	require.NoError(t, s.RecordSession(ctx, e))

	got, err := s.GetSessionByID(ctx, "sess-1")
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.Equal(t, model.ActionTask, got.ActionType)
	assert.Equal(t, "Call Mom", got.Content)
	assert.Equal(t, model.TaskCall, got.TaskKind)
	assert.Equal(t, "tel:mom", got.DeepLink)
	assert.Equal(t, 300, got.DurationSeconds)
	assert.Equal(t, model.OutcomeCompleted, got.Outcome)
	assert.True(t, base.Equal(got.StartedAt))
	assert.True(t, base.Add(5*time.Minute).Equal(got.EndedAt))

	byRow, err := s.GetSessionByID(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, got.SessionID, byRow.SessionID)
}

func TestGetSessionByID_NotFound(t *testing.T) {
	s := testutil.NewTestStore(t)
	_, err := s.GetSessionByID(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecordSession_DuplicateSessionID(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	e := entry("sess-1", model.ActionAlarm, model.OutcomeCompleted, time.Minute)
	require.NoError(t, s.RecordSession(ctx, e))
	assert.Error(t, s.RecordSession(ctx, e))
}

func TestGetSessions_Filters(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordSession(ctx, entry("a", model.ActionAlarm, model.OutcomeCompleted, 1*time.Minute)))
	require.NoError(t, s.RecordSession(ctx, entry("b", model.ActionAnnouncement, model.OutcomeStopped, 2*time.Minute)))
	require.NoError(t, s.RecordSession(ctx, entry("c", model.ActionTask, model.OutcomeLinkFailed, 3*time.Minute)))
	require.NoError(t, s.RecordSession(ctx, entry("d", model.ActionAlarm, model.OutcomeStopped, 4*time.Minute)))

	all, err := s.GetSessions(ctx, store.HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "d", all[0].SessionID)
	assert.Equal(t, "a", all[3].SessionID)

	stopped := model.OutcomeStopped
	got, err := s.GetSessions(ctx, store.HistoryFilter{Outcome: &stopped})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "d", got[0].SessionID)
	assert.Equal(t, "b", got[1].SessionID)

	alarm := model.ActionAlarm
	got, err = s.GetSessions(ctx, store.HistoryFilter{ActionType: &alarm, Outcome: &stopped})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "d", got[0].SessionID)

	since := base.Add(3 * time.Minute)
	got, err = s.GetSessions(ctx, store.HistoryFilter{Since: &since})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.GetSessions(ctx, store.HistoryFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].SessionID)
	assert.Equal(t, "b", got[1].SessionID)

	got, err = s.GetSessions(ctx, store.HistoryFilter{Offset: 3})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].SessionID)
}

func TestCountByOutcome(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordSession(ctx, entry("a", model.ActionAlarm, model.OutcomeCompleted, time.Minute)))
	require.NoError(t, s.RecordSession(ctx, entry("b", model.ActionAlarm, model.OutcomeCompleted, 2*time.Minute)))
	require.NoError(t, s.RecordSession(ctx, entry("c", model.ActionAnnouncement, model.OutcomeAudioError, 3*time.Minute)))

	counts, err := s.CountByOutcome(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[model.Outcome]int{
		model.OutcomeCompleted:  2,
		model.OutcomeAudioError: 1,
	}, counts)
}

func TestDeleteSessionsBefore(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordSession(ctx, entry("old", model.ActionAlarm, model.OutcomeCompleted, -48*time.Hour)))
	require.NoError(t, s.RecordSession(ctx, entry("new", model.ActionAlarm, model.OutcomeCompleted, time.Hour)))

	n, err := s.DeleteSessionsBefore(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	all, err := s.GetSessions(ctx, store.HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "new", all[0].SessionID)
}

func TestPrune(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordSession(ctx, entry("old", model.ActionAlarm, model.OutcomeCompleted, -100*24*time.Hour)))
	require.NoError(t, s.RecordSession(ctx, entry("new", model.ActionAlarm, model.OutcomeCompleted, 0)))

	n, err := s.Prune(ctx, 0, base)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.Prune(ctx, 90, base)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.RecordSession(context.Background(), entry("a", model.ActionAlarm, model.OutcomeCompleted, 0)))
	require.NoError(t, s.Close())

	s, err = store.NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	all, err := s.GetSessions(context.Background(), store.HistoryFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
