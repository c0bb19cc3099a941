package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/kronaut/internal/model"
	"github.com/nhle/kronaut/internal/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) (configPath, dbPath string) {
	t.Helper()
	dir := t.TempDir()
	dbPath = filepath.Join(dir, "data", "history.db")
	configPath = filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("storage:\n  database_path: %s\nlog:\n  level: error\n", dbPath)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath, dbPath
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "parse", "Call", "Mom")
	require.NoError(t, err)
	assert.Contains(t, out, "call")
	assert.Contains(t, out, "mom")
	assert.Contains(t, out, "tel:mom")
}

func TestParseCommand_Website(t *testing.T) {
	out, err := execute(t, "parse", "open google.com")
	require.NoError(t, err)
	assert.Contains(t, out, "https://google.com")
}

func TestParseCommand_NoMatch(t *testing.T) {
	_, err := execute(t, "parse", "hello", "there")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"hello there"`)
	assert.Contains(t, err.Error(), "Call John")
}

func TestParseCommand_RequiresText(t *testing.T) {
	_, err := execute(t, "parse")
	assert.Error(t, err)
}

func TestHistoryCommand_Empty(t *testing.T) {
	configPath, _ := writeConfig(t)

	out, err := execute(t, "--config", configPath, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions recorded.")
}

func TestHistoryCommand(t *testing.T) {
	configPath, dbPath := writeConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(dbPath), 0o755))

	s, err := store.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	now := time.Now()
	ctx := context.Background()
	require.NoError(t, s.RecordSession(ctx, model.HistoryEntry{
		SessionID:       "s1",
		ActionType:      model.ActionAnnouncement,
		Content:         "Stretch",
		DurationSeconds: 300,
		Outcome:         model.OutcomeCompleted,
		StartedAt:       now.Add(-10 * time.Minute),
		EndedAt:         now.Add(-5 * time.Minute),
	}))
	require.NoError(t, s.RecordSession(ctx, model.HistoryEntry{
		SessionID:       "s2",
		ActionType:      model.ActionAlarm,
		DurationSeconds: 600,
		Outcome:         model.OutcomeStopped,
		StartedAt:       now.Add(-3 * time.Minute),
		EndedAt:         now,
	}))
	require.NoError(t, s.Close())

	out, err := execute(t, "--config", configPath, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Stretch")
	assert.Contains(t, out, "05:00")
	assert.Contains(t, out, "completed: 1")
	assert.Contains(t, out, "stopped: 1")

	out, err = execute(t, "--config", configPath, "history", "--outcome", "stopped")
	require.NoError(t, err)
	assert.NotContains(t, out, "Stretch")
	assert.Contains(t, out, "alarm")
}

func TestHistoryCommand_UnknownOutcome(t *testing.T) {
	configPath, _ := writeConfig(t)

	_, err := execute(t, "--config", configPath, "history", "--outcome", "exploded")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown outcome")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
	assert.Contains(t, out, Commit)
}

func TestSummarize(t *testing.T) {
	got := summarize(map[model.Outcome]int{
		model.OutcomeStopped:   2,
		model.OutcomeCompleted: 5,
	})
	assert.Equal(t, "completed: 5  stopped: 2", got)
}

func TestEnsureConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, ensureConfigFile(path))
	cfg, err := model.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.Storage.RetentionDays)

	require.NoError(t, os.WriteFile(path, []byte("storage:\n  retention_days: 7\n"), 0o644))
	require.NoError(t, ensureConfigFile(path))
	cfg, err = model.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Storage.RetentionDays)
}
