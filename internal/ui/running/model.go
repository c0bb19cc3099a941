package running

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kronaut/internal/keys"
	"github.com/nhle/kronaut/internal/model"
	"github.com/nhle/kronaut/internal/theme"
	"github.com/nhle/kronaut/internal/timer"
)

// defaultAdjustMinutes pre-fills the adjust box.
const defaultAdjustMinutes = "5"

// PauseMsg asks the app to toggle pause.
type PauseMsg struct{}

// StopRequestedMsg asks the app to confirm stopping the timer.
type StopRequestedMsg struct{}

// AdjustMsg carries a confirmed adjustment. Minutes is 0 when the input
// was not a number.
type AdjustMsg struct {
	Minutes int
	Add     bool
}

// Model is the countdown screen with its adjust box.
type Model struct {
	keys      *keys.KeyMap
	snap      timer.Snapshot
	bar       progress.Model
	input     textinput.Model
	adjusting bool
	add       bool
	width     int
}

// New creates the running screen.
func New(k *keys.KeyMap, width int) Model {
	bar := progress.New(
		progress.WithSolidFill(theme.ColorMint.Dark),
		progress.WithoutPercentage(),
	)

	ti := textinput.New()
	ti.Placeholder = "minutes"
	ti.Prompt = "> "
	ti.CharLimit = 4
	ti.Width = 8

	m := Model{
		keys:  k,
		bar:   bar,
		input: ti,
	}
	m.SetSize(width)
	return m
}

// SetSnapshot updates the state to render.
func (m *Model) SetSnapshot(s timer.Snapshot) {
	m.snap = s
}

// SetSize updates the screen width.
func (m *Model) SetSize(width int) {
	m.width = width
	w := width - 12
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	m.bar.Width = w
}

// Adjusting reports whether the adjust box has focus.
func (m Model) Adjusting() bool {
	return m.adjusting
}

// OpenAdjust focuses the adjust box for adding or reducing time.
func (m *Model) OpenAdjust(add bool) tea.Cmd {
	m.adjusting = true
	m.add = add
	m.input.SetValue(defaultAdjustMinutes)
	m.input.CursorEnd()
	return m.input.Focus()
}

// CloseAdjust blurs and hides the adjust box.
func (m *Model) CloseAdjust() {
	m.adjusting = false
	m.input.Blur()
}

// Update handles the running screen's keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.adjusting {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.adjusting {
		switch {
		case key.Matches(keyMsg, m.keys.Continue):
			minutes, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
			if err != nil {
				minutes = 0
			}
			add := m.add
			m.CloseAdjust()
			return m, func() tea.Msg { return AdjustMsg{Minutes: minutes, Add: add} }
		case key.Matches(keyMsg, m.keys.Back):
			m.CloseAdjust()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Pause):
		return m, func() tea.Msg { return PauseMsg{} }
	case key.Matches(keyMsg, m.keys.Stop):
		return m, func() tea.Msg { return StopRequestedMsg{} }
	case key.Matches(keyMsg, m.keys.Add):
		cmd := m.OpenAdjust(true)
		return m, cmd
	case key.Matches(keyMsg, m.keys.Reduce):
		cmd := m.OpenAdjust(false)
		return m, cmd
	}
	return m, nil
}

// View renders the clock, progress bar and controls.
func (m Model) View() string {
	s := m.snap.Session

	title := theme.TitleStyle.Render(actionTitle(s.Action))
	clock := theme.ClockStyle.Render(model.FormatClock(s.TimeRemaining))

	state := "Running"
	switch m.snap.Phase {
	case timer.PhasePaused:
		state = "Paused"
	case timer.PhaseAnnouncing:
		state = "Announcing..."
	case timer.PhaseAlarm, timer.PhaseAudioError, timer.PhaseLinkFailed:
		state = "Finished"
	}

	remaining := s.Progress()
	bar := m.bar
	bar.FullColor = theme.ProgressColor(remaining).Dark

	parts := []string{
		title,
		clock,
		bar.ViewAs(remaining),
		theme.HelpStyle.Render(state),
	}

	if m.adjusting {
		verb := "Reduce by"
		if m.add {
			verb = "Add"
		}
		box := theme.LabelStyle.Render(verb) + m.input.View() + theme.HelpStyle.Render(" minutes")
		parts = append(parts, "", box)
	}

	return theme.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
}

func actionTitle(a model.Action) string {
	switch a.Type {
	case model.ActionAnnouncement:
		return "Announcement: " + a.Content
	case model.ActionTask:
		return "Task: " + a.Content
	default:
		return "Alarm"
	}
}
