package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorMint   = lipgloss.AdaptiveColor{Dark: "#50B699", Light: "#2F855A"}
	ColorAmber  = lipgloss.AdaptiveColor{Dark: "#FFB020", Light: "#B7791F"}
	ColorOrange = lipgloss.AdaptiveColor{Dark: "#EC6B1A", Light: "#C05621"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite  = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the top header bar and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorMint).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps a screen's main card.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// DialogStyle frames modal overlays.
var DialogStyle = lipgloss.NewStyle().
	Padding(1, 3).
	Border(lipgloss.ThickBorder()).
	BorderForeground(ColorMint)

// TitleStyle is used for screen and dialog titles.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	MarginBottom(1)

// LabelStyle renders field labels on summary cards.
var LabelStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Width(12)

// ValueStyle renders field values on summary cards.
var ValueStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite)

// ClockStyle renders the countdown digits.
var ClockStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Padding(1, 0)

// ButtonStyle renders an unfocused dialog button.
var ButtonStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 2).
	MarginRight(1)

// ActiveButtonStyle renders the focused dialog button.
var ActiveButtonStyle = ButtonStyle.
	Background(ColorMint).
	Bold(true)

// ErrorStyle is used for inline validation messages.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorRed)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// StepStyle renders a wizard step marker; active steps are highlighted.
func StepStyle(active bool) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return base.Bold(true).Foreground(ColorMint)
	}
	return base.Foreground(ColorGray)
}

// ProgressColor returns the bar colour for the remaining fraction of a
// countdown: mint above half, amber above a fifth, orange below.
func ProgressColor(remaining float64) lipgloss.AdaptiveColor {
	switch {
	case remaining > 0.5:
		return ColorMint
	case remaining > 0.2:
		return ColorAmber
	default:
		return ColorOrange
	}
}
