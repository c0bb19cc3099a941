package splash

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kronaut/internal/theme"
)

// DoneMsg is emitted when the splash delay elapses or a key is pressed.
type DoneMsg struct{}

// Model is the startup splash screen.
type Model struct {
	delay time.Duration
}

// New creates a splash screen shown for delay.
func New(delay time.Duration) Model {
	return Model{delay: delay}
}

// Init starts the auto-advance timer.
func (m Model) Init() tea.Cmd {
	if m.delay <= 0 {
		return done
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return DoneMsg{} })
}

// Update skips the splash on any key.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, done
	}
	return m, nil
}

// View renders the logo.
func (m Model) View() string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorMint).
		Render("⏱  KRONAUT")
	tagline := theme.HelpStyle.Render("The Easy Timer")
	return lipgloss.JoinVertical(lipgloss.Center, logo, "", tagline)
}

func done() tea.Msg {
	return DoneMsg{}
}
