package review

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kronaut/internal/keys"
	"github.com/nhle/kronaut/internal/model"
	"github.com/nhle/kronaut/internal/taskcmd"
	"github.com/nhle/kronaut/internal/theme"
)

// StartRequestedMsg is emitted when the user asks to start the timer.
type StartRequestedMsg struct{}

// Model is the review card shown before a timer starts.
type Model struct {
	keys     *keys.KeyMap
	duration model.Duration
	action   model.Action
	width    int
}

// New creates a review model.
func New(k *keys.KeyMap, width int) Model {
	return Model{keys: k, width: width}
}

// SetDraft updates the draft being reviewed.
func (m *Model) SetDraft(d model.Duration, a model.Action) {
	m.duration = d
	m.action = a
}

// SetSize updates the card width.
func (m *Model) SetSize(width int) {
	m.width = width
}

// Update emits StartRequestedMsg on enter.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Continue) {
		return m, func() tea.Msg { return StartRequestedMsg{} }
	}
	return m, nil
}

// View renders the summary card.
func (m Model) View() string {
	rows := []string{
		row("Duration", m.duration.String()),
		row("Action", m.action.Type.Label()),
	}

	switch m.action.Type {
	case model.ActionAnnouncement:
		rows = append(rows, row("Says", quoteOrDash(m.action.Content)))
	case model.ActionTask:
		rows = append(rows, row("Command", quoteOrDash(m.action.Content)))
		if task, ok := taskcmd.Parse(m.action.Content); ok {
			rows = append(rows,
				row("Will", taskcmd.Describe(*task)),
				row("Link", taskcmd.DeepLink(*task)),
			)
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.TitleStyle.Render("Review Timer"),
		strings.Join(rows, "\n"),
		"",
		theme.HelpStyle.Render("Press enter to start the timer"),
	)

	width := m.width - 4
	if width > 60 {
		width = 60
	}
	if width < 30 {
		width = 30
	}
	return theme.PanelStyle.Width(width).Render(body)
}

func row(label, value string) string {
	return theme.LabelStyle.Render(label) + theme.ValueStyle.Render(value)
}

func quoteOrDash(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	return "\"" + s + "\""
}
