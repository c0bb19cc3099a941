package durationform

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kronaut/internal/model"
	"github.com/nhle/kronaut/internal/theme"
)

// Presets are the one-press durations, in minutes.
var Presets = []int{5, 10, 15, 20, 30}

// custom is the preset value that reveals the hour and minute inputs.
const custom = 0

// DurationSetMsg is dispatched when the user confirms a duration.
type DurationSetMsg struct {
	Duration model.Duration
}

// DurationInvalidMsg is dispatched when the confirmed duration is shorter
// than one minute.
type DurationInvalidMsg struct{}

// DurationCancelMsg is dispatched when the user aborts the form.
type DurationCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	preset  int
	hours   string
	minutes string
}

// Model is the Bubble Tea model for the duration step.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new duration form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{preset: Presets[0]},
		width:  width,
		height: height,
	}
}

// Start initializes the form with the current draft duration.
func (m *Model) Start(current model.Duration) tea.Cmd {
	m.fb.preset = presetFor(current)
	m.fb.hours = strconv.Itoa(current.Hours)
	m.fb.minutes = strconv.Itoa(current.Minutes)
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the duration form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return DurationCancelMsg{} }
	}

	return m, cmd
}

// View renders the duration form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	content := theme.TitleStyle.Render("Set Timer Duration") + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	opts := make([]huh.Option[int], 0, len(Presets)+1)
	for _, p := range Presets {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d minutes", p), p))
	}
	opts = append(opts, huh.NewOption("Custom", custom))

	fb := m.fb
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How long?").
				Options(opts...).
				Value(&fb.preset),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Hours").
				Placeholder(fmt.Sprintf("0-%d", model.MaxHours)).
				Value(&fb.hours).
				Validate(validateRange("Hours", model.MaxHours)),
			huh.NewInput().
				Title("Minutes").
				Placeholder(fmt.Sprintf("0-%d", model.MaxMinutes)).
				Value(&fb.minutes).
				Validate(validateRange("Minutes", model.MaxMinutes)),
		).WithHideFunc(func() bool { return fb.preset != custom }),
	).WithWidth(m.formWidth()).WithShowHelp(false)
}

func (m Model) handleSubmit() tea.Cmd {
	d := toDuration(m.fb)
	if d.TotalMinutes() < 1 {
		return func() tea.Msg { return DurationInvalidMsg{} }
	}
	return func() tea.Msg { return DurationSetMsg{Duration: d} }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 30 {
		w = 30
	}
	if w > 60 {
		w = 60
	}
	return w
}

// presetFor maps a duration back to its preset, or custom.
func presetFor(d model.Duration) int {
	if d.Hours != 0 {
		return custom
	}
	for _, p := range Presets {
		if d.Minutes == p {
			return p
		}
	}
	return custom
}

func toDuration(fb *formBindings) model.Duration {
	if fb.preset != custom {
		return model.Duration{Minutes: fb.preset}
	}
	h, _ := parseField(fb.hours)
	mins, _ := parseField(fb.minutes)
	return model.Duration{Hours: h, Minutes: mins}
}

// parseField reads a numeric input; blank means zero.
func parseField(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func validateRange(name string, limit int) func(string) error {
	return func(s string) error {
		n, err := parseField(s)
		if err != nil {
			return fmt.Errorf("%s must be a number", name)
		}
		if n < 0 || n > limit {
			return fmt.Errorf("%s must be between 0 and %d", name, limit)
		}
		return nil
	}
}
