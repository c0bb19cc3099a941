package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Wizard
	Continue   key.Binding
	Back       key.Binding
	StepTime   key.Binding
	StepTask   key.Binding
	StepReview key.Binding

	// Running timer
	Pause  key.Binding
	Stop   key.Binding
	Add    key.Binding
	Reduce key.Binding

	// Dialogs
	Left  key.Binding
	Right key.Binding

	// Help toggle
	Help key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Continue: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		StepTime: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "time"),
		),
		StepTask: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "task"),
		),
		StepReview: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "review"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space/p", "pause/resume"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s", "x"),
			key.WithHelp("s", "stop"),
		),
		Add: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add time"),
		),
		Reduce: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "reduce time"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Continue, k.Back, k.Pause, k.Stop,
		k.Help, k.Quit,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Continue, k.Back, k.StepTime, k.StepTask, k.StepReview},
		{k.Pause, k.Stop, k.Add, k.Reduce},
		{k.Left, k.Right, k.Help, k.Quit},
	}
}
