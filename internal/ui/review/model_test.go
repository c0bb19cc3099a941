package review

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/kronaut/internal/keys"
	"github.com/nhle/kronaut/internal/model"
)

func TestReviewView(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80)
	m.SetDraft(model.Duration{Hours: 1, Minutes: 30}, model.TaskAction("Call Mom", nil))

	view := m.View()
	assert.Contains(t, view, "1h 30m")
	assert.Contains(t, view, "Automated Task")
	assert.Contains(t, view, "tel:mom")
}

func TestReviewView_Alarm(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80)
	m.SetDraft(model.DefaultDuration(), model.DefaultAction())

	view := m.View()
	assert.Contains(t, view, "5 minutes")
	assert.Contains(t, view, "Alarm")
	assert.NotContains(t, view, "Command")
}

func TestReviewEnterRequestsStart(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, StartRequestedMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
}
