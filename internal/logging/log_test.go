package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Writer: &buf, Level: "warn"})
	assert.Equal(t, log.WarnLevel, l.GetLevel())

	l.Info("hidden")
	l.Warn("shown", "k", "v")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=v")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	l := New(Options{Writer: &bytes.Buffer{}, Level: "loud"})
	assert.Equal(t, log.InfoLevel, l.GetLevel())
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kronaut.log")
	l, closer, err := OpenFile(path, "debug")
	require.NoError(t, err)

	l.Debug("timer started", "session", "abc")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "timer started")
}
