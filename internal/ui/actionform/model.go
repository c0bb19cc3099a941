package actionform

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kronaut/internal/model"
	"github.com/nhle/kronaut/internal/taskcmd"
	"github.com/nhle/kronaut/internal/theme"
	"github.com/nhle/kronaut/internal/timer"
)

// ActionSetMsg is dispatched when the user confirms an action.
type ActionSetMsg struct {
	Action model.Action
}

// ActionCancelMsg is dispatched when the user aborts the form.
type ActionCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	actionType model.ActionType
	content    string
}

// Model is the Bubble Tea model for the action step.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new action form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{actionType: model.ActionAlarm},
		width:  width,
		height: height,
	}
}

// Start initializes the form with the current draft action.
func (m *Model) Start(current model.Action) tea.Cmd {
	m.fb.actionType = current.Type
	if m.fb.actionType == "" {
		m.fb.actionType = model.ActionAlarm
	}
	m.fb.content = current.Content
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the action form.
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
		return m, func() tea.Msg { return ActionCancelMsg{} }
	}

	return m, cmd
}

// View renders the action form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	content := theme.TitleStyle.Render("When the timer ends...") + "\n" + m.form.View()

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
	fb := m.fb
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.ActionType]().
				Title("Action").
				Options(
					huh.NewOption(model.ActionAlarm.Label(), model.ActionAlarm),
					huh.NewOption(model.ActionAnnouncement.Label(), model.ActionAnnouncement),
					huh.NewOption(model.ActionTask.Label(), model.ActionTask),
				).
				Value(&fb.actionType),
		),
		huh.NewGroup(
			huh.NewInput().
				TitleFunc(func() string { return contentTitle(fb.actionType) }, &fb.actionType).
				DescriptionFunc(func() string { return contentHint(fb.actionType) }, &fb.actionType).
				Value(&fb.content).
				Validate(func(s string) error { return validateContent(fb.actionType, s) }),
		).WithHideFunc(func() bool { return fb.actionType == model.ActionAlarm }),
	).WithWidth(m.formWidth()).WithShowHelp(false)
}

func (m Model) handleSubmit() tea.Cmd {
	a := toAction(m.fb)
	return func() tea.Msg { return ActionSetMsg{Action: a} }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 30 {
		w = 30
	}
	if w > 70 {
		w = 70
	}
	return w
}

func toAction(fb *formBindings) model.Action {
	content := strings.TrimSpace(fb.content)
	switch fb.actionType {
	case model.ActionAnnouncement:
		return model.AnnouncementAction(content)
	case model.ActionTask:
		parsed, _ := taskcmd.Parse(content)
		return model.TaskAction(content, parsed)
	default:
		return model.AlarmAction()
	}
}

func contentTitle(t model.ActionType) string {
	if t == model.ActionTask {
		return "Task command"
	}
	return "What should Kronaut say?"
}

func contentHint(t model.ActionType) string {
	if t == model.ActionTask {
		return "Try: " + strings.Join(taskcmd.Examples(), ", ")
	}
	return "Spoken aloud when the timer finishes"
}

func validateContent(t model.ActionType, content string) error {
	err := timer.ValidateAction(model.Action{Type: t, Content: content})
	var vErr *timer.ValidationError
	if errors.As(err, &vErr) {
		return errors.New(vErr.Message)
	}
	return err
}
