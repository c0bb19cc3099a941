package app

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nhle/kronaut/internal/model"
	"github.com/nhle/kronaut/internal/timer"
	"github.com/nhle/kronaut/internal/ui"
	"github.com/nhle/kronaut/internal/ui/actionform"
	"github.com/nhle/kronaut/internal/ui/durationform"
	helpview "github.com/nhle/kronaut/internal/ui/help"
	"github.com/nhle/kronaut/internal/ui/overlay"
	"github.com/nhle/kronaut/internal/ui/review"
	"github.com/nhle/kronaut/internal/ui/running"
	"github.com/nhle/kronaut/internal/ui/splash"
	"github.com/nhle/kronaut/internal/ui/welcome"
)

// Screen is the active full-screen view.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenWelcome
	ScreenDuration
	ScreenAction
	ScreenReview
	ScreenRunning
)

func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenWelcome:
		return "welcome"
	case ScreenDuration:
		return "duration"
	case ScreenAction:
		return "action"
	case ScreenReview:
		return "review"
	case ScreenRunning:
		return "running"
	default:
		return "unknown"
	}
}

var stepLabels = []string{"1 Time", "2 Task", "3 Review"}

// TimerController is the part of timer.Controller the UI drives.
type TimerController interface {
	RequestNotificationPermission() bool
	Start(d model.Duration, a model.Action) error
	TogglePause() error
	Adjust(minutes int, add bool) error
	Stop() error
	Acknowledge() error
	RetryLink() error
	CopyLink() (string, error)
	CancelLink() error
	Snapshot() timer.Snapshot
	WaitForEvent() tea.Cmd
}

// Options configure the root model.
type Options struct {
	SplashDelay time.Duration
	Logger      *log.Logger
}

// draft is the timer being configured in the wizard.
type draft struct {
	duration model.Duration
	action   model.Action
}

func defaultDraft() draft {
	return draft{duration: model.DefaultDuration(), action: model.DefaultAction()}
}

// Model is the root Bubble Tea model that manages screen routing, overlays
// and the timer controller.
type Model struct {
	screen       Screen
	layout       ui.Layout
	keys         *KeyMap
	ctrl         TimerController
	logger       *log.Logger
	draft        draft
	splash       splash.Model
	welcome      welcome.Model
	durationForm durationform.Model
	actionForm   actionform.Model
	review       review.Model
	running      running.Model
	helpView     helpview.Model
	overlay      overlay.Model
	overlayKind  overlayKind
	showHelp     bool
	ready        bool
}

// New creates a new root application model driving ctrl.
func New(ctrl TimerController, opts Options) Model {
	k := DefaultKeyMap()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		screen:       ScreenSplash,
		keys:         k,
		ctrl:         ctrl,
		logger:       logger,
		draft:        defaultDraft(),
		layout:       ui.NewLayout(80, 24),
		splash:       splash.New(opts.SplashDelay),
		welcome:      welcome.New(k),
		durationForm: durationform.New(80, 24),
		actionForm:   actionform.New(80, 24),
		review:       review.New(k, 80),
		running:      running.New(k, 80),
		helpView:     helpview.New(k, 80, 24),
	}
}

// Screen returns the active screen.
func (m Model) Screen() Screen {
	return m.screen
}

// Init starts the splash timer, asks for notification permission and
// subscribes to controller events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.splash.Init(),
		m.requestPermission(),
		m.ctrl.WaitForEvent(),
	)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.durationForm.SetSize(contentWidth, contentHeight)
		m.actionForm.SetSize(contentWidth, contentHeight)
		m.review.SetSize(contentWidth)
		m.running.SetSize(contentWidth)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.overlay.SetWidth(contentWidth - 4)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case permissionMsg:
		m.logger.Debug("notifications", "granted", msg.granted)
		return m, nil

	case timer.EventMsg:
		cmd := m.syncController()
		return m, tea.Batch(cmd, m.ctrl.WaitForEvent())

	case splash.DoneMsg:
		if m.screen != ScreenSplash {
			return m, nil
		}
		m.screen = ScreenWelcome
		return m, nil

	case welcome.ContinueMsg:
		return m, m.goTo(ScreenDuration)

	case durationform.DurationSetMsg:
		m.draft.duration = msg.Duration
		return m, m.goTo(ScreenAction)

	case durationform.DurationInvalidMsg:
		m.openNotice("Invalid Duration", "Please set a timer duration of at least 1 minute.")
		return m, m.durationForm.Start(m.draft.duration)

	case durationform.DurationCancelMsg:
		return m, m.durationForm.Start(m.draft.duration)

	case actionform.ActionSetMsg:
		m.draft.action = msg.Action
		return m, m.goTo(ScreenReview)

	case actionform.ActionCancelMsg:
		return m, m.goTo(ScreenDuration)

	case review.StartRequestedMsg:
		return m, m.startTimer()

	case running.PauseMsg:
		m.togglePause()
		return m, nil

	case running.StopRequestedMsg:
		m.openStopConfirm()
		return m, nil

	case running.AdjustMsg:
		m.adjust(msg.Minutes, msg.Add)
		return m, nil

	case confirmStopMsg:
		m.closeOverlay()
		return m, m.stopTimer()

	case closeOverlayMsg:
		m.closeOverlay()
		return m, nil

	case acknowledgeMsg:
		return m, m.acknowledge()

	case retryLinkMsg:
		return m, m.retryLink()

	case copyLinkMsg:
		m.copyLink()
		return m, nil

	case cancelLinkMsg:
		return m, m.cancelLink()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		if m.overlay.Open() {
			var cmd tea.Cmd
			m.overlay, cmd = m.overlay.Update(msg)
			return m, cmd
		}

		if m.allowsShortcuts() {
			switch {
			case key.Matches(msg, m.keys.Help):
				m.showHelp = !m.showHelp
				return m, nil
			case m.showHelp && key.Matches(msg, m.keys.Back):
				m.showHelp = false
				return m, nil
			case m.screen == ScreenReview && key.Matches(msg, m.keys.StepTime):
				return m, m.goTo(ScreenDuration)
			case m.screen == ScreenReview && key.Matches(msg, m.keys.StepTask):
				return m, m.goTo(ScreenAction)
			case m.screen == ScreenReview && key.Matches(msg, m.keys.Back):
				return m, m.goTo(ScreenAction)
			}
		}

		if m.screen == ScreenAction && key.Matches(msg, m.keys.Back) {
			return m, m.goTo(ScreenDuration)
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// allowsShortcuts reports whether single-character app shortcuts apply.
// Forms and the adjust box own the keyboard while they are focused.
func (m Model) allowsShortcuts() bool {
	switch m.screen {
	case ScreenWelcome, ScreenReview:
		return true
	case ScreenRunning:
		return !m.running.Adjusting()
	default:
		return false
	}
}

// goTo switches screens and prepares the target view.
func (m *Model) goTo(s Screen) tea.Cmd {
	m.screen = s
	m.showHelp = false

	switch s {
	case ScreenDuration:
		return m.durationForm.Start(m.draft.duration)
	case ScreenAction:
		return m.actionForm.Start(m.draft.action)
	case ScreenReview:
		m.review.SetDraft(m.draft.duration, m.draft.action)
	case ScreenRunning:
		m.running.SetSnapshot(m.ctrl.Snapshot())
	}
	return nil
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.screen {
	case ScreenSplash:
		m.splash, cmd = m.splash.Update(msg)
	case ScreenWelcome:
		m.welcome, cmd = m.welcome.Update(msg)
	case ScreenDuration:
		m.durationForm, cmd = m.durationForm.Update(msg)
	case ScreenAction:
		m.actionForm, cmd = m.actionForm.Update(msg)
	case ScreenReview:
		m.review, cmd = m.review.Update(msg)
	case ScreenRunning:
		m.running, cmd = m.running.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Kronaut", m.headerStatus())
	content := m.layout.RenderCentered(m.renderContent())
	statusBar := m.layout.RenderStatusBar(m.statusHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the active view, or the
// overlay or help panel on top of it.
func (m Model) renderContent() string {
	if m.overlay.Open() {
		return m.overlay.View()
	}
	if m.showHelp {
		return m.helpView.View()
	}

	switch m.screen {
	case ScreenSplash:
		return m.splash.View()
	case ScreenWelcome:
		return m.welcome.View()
	case ScreenDuration:
		return m.durationForm.View()
	case ScreenAction:
		return m.actionForm.View()
	case ScreenReview:
		return m.review.View()
	case ScreenRunning:
		return m.running.View()
	default:
		return ""
	}
}

func (m Model) headerStatus() string {
	if m.screen == ScreenRunning {
		return m.ctrl.Snapshot().Phase.String()
	}
	return "The Easy Timer"
}

// statusHints returns the status bar text for the active screen.
func (m Model) statusHints() string {
	switch m.screen {
	case ScreenDuration:
		return m.layout.RenderSteps(stepLabels, 0) + "  enter: next"
	case ScreenAction:
		return m.layout.RenderSteps(stepLabels, 1) + "  enter: next  esc: back"
	case ScreenReview:
		return m.layout.RenderSteps(stepLabels, 2) + "  enter: start  1/2: edit  ?: help"
	case ScreenRunning:
		if m.running.Adjusting() {
			return "enter: apply  esc: cancel"
		}
		return "space: pause/resume  s: stop  +/-: adjust  ?: help"
	case ScreenWelcome:
		return "enter: continue  ?: help  ctrl+c: quit"
	default:
		return "ctrl+c: quit"
	}
}
