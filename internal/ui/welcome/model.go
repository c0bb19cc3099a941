package welcome

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kronaut/internal/keys"
	"github.com/nhle/kronaut/internal/theme"
)

// ContinueMsg is emitted when the user leaves the welcome screen.
type ContinueMsg struct{}

// Model is the welcome screen.
type Model struct {
	keys *keys.KeyMap
}

// New creates a welcome screen.
func New(k *keys.KeyMap) Model {
	return Model{keys: k}
}

// Update emits ContinueMsg on enter.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Continue) {
		return m, func() tea.Msg { return ContinueMsg{} }
	}
	return m, nil
}

// View renders the greeting.
func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		Render("Welcome to Kronaut")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.ColorMint).
		Render("The Easy Timer")
	body := theme.HelpStyle.Render("Set a time, pick what happens when it runs out, and get on with your day.")
	hint := theme.HelpStyle.Render("Press enter to get started")

	return theme.PanelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center, title, subtitle, "", body, "", hint),
	)
}
