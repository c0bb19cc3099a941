// Package overlay renders modal dialogs with a row of buttons.
package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kronaut/internal/keys"
	"github.com/nhle/kronaut/internal/theme"
)

// Button is a dialog choice. Msg is emitted when it is pressed.
type Button struct {
	Label string
	Msg   tea.Msg
}

// Model is a modal dialog. The zero value is closed.
type Model struct {
	Title   string
	Message string
	Note    string
	Buttons []Button

	// Dismiss is emitted on esc; nil keeps the dialog open.
	Dismiss tea.Msg

	keys  *keys.KeyMap
	focus int
	open  bool
	width int
}

// New creates an open dialog.
func New(k *keys.KeyMap, title, message string, buttons ...Button) Model {
	return Model{
		Title:   title,
		Message: message,
		Buttons: buttons,
		keys:    k,
		open:    true,
		width:   60,
	}
}

// WithDismiss sets the message emitted when the dialog is dismissed with esc.
func (m Model) WithDismiss(msg tea.Msg) Model {
	m.Dismiss = msg
	return m
}

// Open reports whether the dialog is showing.
func (m Model) Open() bool {
	return m.open
}

// Close hides the dialog.
func (m *Model) Close() {
	m.open = false
}

// SetNote shows a secondary line under the message, e.g. "Link copied".
func (m *Model) SetNote(note string) {
	m.Note = note
}

// Focused returns the index of the focused button.
func (m Model) Focused() int {
	return m.focus
}

// SetWidth updates the dialog width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Update moves focus between buttons and emits the chosen button's Msg.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		if m.focus > 0 {
			m.focus--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.focus < len(m.Buttons)-1 {
			m.focus++
		}
	case key.Matches(keyMsg, m.keys.Continue):
		if len(m.Buttons) == 0 {
			return m, nil
		}
		chosen := m.Buttons[m.focus].Msg
		return m, func() tea.Msg { return chosen }
	case key.Matches(keyMsg, m.keys.Back):
		if m.Dismiss != nil {
			dismiss := m.Dismiss
			return m, func() tea.Msg { return dismiss }
		}
	}

	return m, nil
}

// View renders the dialog.
func (m Model) View() string {
	if !m.open {
		return ""
	}

	width := m.width
	if width > 60 {
		width = 60
	}
	if width < 30 {
		width = 30
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width - 8).Render(m.Message))
	if m.Note != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.HelpStyle.Render(m.Note))
	}

	buttons := make([]string, len(m.Buttons))
	for i, btn := range m.Buttons {
		style := theme.ButtonStyle
		if i == m.focus {
			style = theme.ActiveButtonStyle
		}
		buttons[i] = style.Render(btn.Label)
	}
	if len(buttons) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}

	return theme.DialogStyle.Width(width).Render(b.String())
}
