package timer

import (
	"context"
	"io"
	"strings"
	gosync "sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nhle/kronaut/internal/model"
	"github.com/nhle/kronaut/internal/taskcmd"
)

// Phase is the controller's position in the session lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseAnnouncing
	PhaseAlarm
	PhaseAudioError
	PhaseLinkFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseAnnouncing:
		return "announcing"
	case PhaseAlarm:
		return "alarm"
	case PhaseAudioError:
		return "audio_error"
	case PhaseLinkFailed:
		return "link_failed"
	default:
		return "unknown"
	}
}

// Notification text shown on every completion.
const (
	NotificationTitle = "Timer Completed!"
	NotificationBody  = "Your Kronaut timer has finished."

	fallbackAnnouncement = "Timer completed"
	recordTimeout        = 5 * time.Second
)

// Notifier posts desktop notifications.
type Notifier interface {
	RequestPermission() bool
	Notify(title, body string, requireInteraction bool) error
}

// Speaker reads text aloud. Speak returns once playback has started.
type Speaker interface {
	Speak(text string) error
	Stop() error
}

// URLOpener hands a deep link to the operating system.
type URLOpener interface {
	Open(url string) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}

// Recorder persists one history entry per finished session.
type Recorder interface {
	RecordSession(ctx context.Context, entry model.HistoryEntry) error
}

// Dependencies are the collaborators a Controller drives. Nil fields fall
// back to no-ops, and a nil Scheduler falls back to WallClock.
type Dependencies struct {
	Notifier  Notifier
	Speaker   Speaker
	Opener    URLOpener
	Clipboard Clipboard
	Recorder  Recorder
	Scheduler Scheduler
	Logger    *log.Logger
	Now       func() time.Time
}

// Options tune the controller's timing.
type Options struct {
	TickInterval      time.Duration
	AnnouncementGrace time.Duration
}

// EventKind identifies a controller state change.
type EventKind int

const (
	EventStarted EventKind = iota
	EventTick
	EventPaused
	EventResumed
	EventAdjusted
	EventAnnouncing
	EventAlarm
	EventAudioError
	EventLinkFailed
	EventReset
)

// EventMsg is a tea.Msg carrying one controller event. Snapshot remains the
// source of truth; events only say that something changed.
type EventMsg struct {
	Kind      EventKind
	SessionID string
	Remaining int
	Outcome   model.Outcome
	Err       error
}

// Snapshot is a copy of the controller state at one instant.
type Snapshot struct {
	Phase   Phase
	Active  bool
	Session Session
	LinkURL string
	Err     error
}

// Controller owns at most one Session and runs its countdown, completion
// dispatch and recovery phases. It is safe for concurrent use.
type Controller struct {
	notifier  Notifier
	speaker   Speaker
	opener    URLOpener
	clipboard Clipboard
	recorder  Recorder
	sched     Scheduler
	logger    *log.Logger
	now       func() time.Time

	tickInterval time.Duration
	grace        time.Duration

	mu          gosync.Mutex
	phase       Phase
	session     *Session
	linkURL     string
	lastErr     error
	permitted   bool
	tickSeq     uint64
	cancelTick  func() bool
	cancelGrace func() bool
	events      chan EventMsg
	closed      bool
}

// NewController creates an idle Controller.
func NewController(deps Dependencies, opts Options) *Controller {
	c := &Controller{
		notifier:     deps.Notifier,
		speaker:      deps.Speaker,
		opener:       deps.Opener,
		clipboard:    deps.Clipboard,
		recorder:     deps.Recorder,
		sched:        deps.Scheduler,
		logger:       deps.Logger,
		now:          deps.Now,
		tickInterval: opts.TickInterval,
		grace:        opts.AnnouncementGrace,
		events:       make(chan EventMsg, 32),
	}

	if c.notifier == nil {
		c.notifier = nopNotifier{}
	}
	if c.speaker == nil {
		c.speaker = nopSpeaker{}
	}
	if c.opener == nil {
		c.opener = nopOpener{}
	}
	if c.clipboard == nil {
		c.clipboard = nopClipboard{}
	}
	if c.recorder == nil {
		c.recorder = nopRecorder{}
	}
	if c.sched == nil {
		c.sched = WallClock()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.tickInterval <= 0 {
		c.tickInterval = time.Second
	}
	if c.grace < 0 {
		c.grace = 0
	}

	return c
}

// RequestNotificationPermission asks the notifier once. Notifications are
// skipped for the rest of the process when it declines.
func (c *Controller) RequestNotificationPermission() bool {
	granted := c.notifier.RequestPermission()

	c.mu.Lock()
	c.permitted = granted
	c.mu.Unlock()

	c.logger.Debug("notification permission", "granted", granted)
	return granted
}

// Start validates the draft and begins a countdown.
func (c *Controller) Start(d model.Duration, a model.Action) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.phase != PhaseIdle {
		return ErrSessionActive
	}

	s, err := NewSession(d, a, c.now())
	if err != nil {
		return err
	}

	c.session = s
	c.phase = PhaseRunning
	c.linkURL = ""
	c.lastErr = nil
	c.scheduleTick()

	c.logger.Info("timer started", "session", s.ID, "duration", d.String(), "action", string(a.Type))
	c.emit(EventMsg{Kind: EventStarted, SessionID: s.ID, Remaining: s.TimeRemaining})
	return nil
}

// Tick advances the running session by one second immediately, replacing
// the pending scheduled tick.
func (c *Controller) Tick() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseRunning {
		return ErrWrongPhase
	}
	c.stopTick()
	c.advance()
	return nil
}

// TogglePause pauses a running session or resumes a paused one.
func (c *Controller) TogglePause() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case PhaseRunning:
		c.stopTick()
		c.session.TogglePause()
		c.phase = PhasePaused
		c.logger.Debug("timer paused", "session", c.session.ID, "remaining", c.session.TimeRemaining)
		c.emit(EventMsg{Kind: EventPaused, SessionID: c.session.ID, Remaining: c.session.TimeRemaining})
	case PhasePaused:
		c.session.TogglePause()
		c.phase = PhaseRunning
		c.scheduleTick()
		c.logger.Debug("timer resumed", "session", c.session.ID, "remaining", c.session.TimeRemaining)
		c.emit(EventMsg{Kind: EventResumed, SessionID: c.session.ID, Remaining: c.session.TimeRemaining})
	default:
		return ErrWrongPhase
	}
	return nil
}

// Adjust adds or removes whole minutes from a running or paused session.
func (c *Controller) Adjust(minutes int, add bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseRunning && c.phase != PhasePaused {
		return ErrWrongPhase
	}
	if err := c.session.Adjust(minutes, add); err != nil {
		return err
	}

	c.logger.Debug("timer adjusted", "session", c.session.ID, "minutes", minutes, "add", add)
	c.emit(EventMsg{Kind: EventAdjusted, SessionID: c.session.ID, Remaining: c.session.TimeRemaining})
	return nil
}

// Stop abandons the session from any non-idle phase. No completion side
// effects run.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseIdle {
		return ErrNoSession
	}

	if err := c.speaker.Stop(); err != nil {
		c.logger.Warn("stop speech", "err", err)
	}
	c.logger.Info("timer stopped", "session", c.session.ID, "phase", c.phase.String())
	c.finish(model.OutcomeStopped)
	return nil
}

// Acknowledge dismisses the alarm or the audio error overlay.
func (c *Controller) Acknowledge() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case PhaseAlarm:
		c.finish(model.OutcomeCompleted)
	case PhaseAudioError:
		c.finish(model.OutcomeAudioError)
	default:
		return ErrWrongPhase
	}
	return nil
}

// RetryLink tries the failed deep link again. On success the session is
// finished; on failure the controller stays in PhaseLinkFailed.
func (c *Controller) RetryLink() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseLinkFailed {
		return ErrWrongPhase
	}

	if err := c.opener.Open(c.linkURL); err != nil {
		c.lastErr = &DispatchError{Kind: DispatchOpenURL, URL: c.linkURL, Err: err}
		c.logger.Warn("retry open link", "url", c.linkURL, "err", err)
		return c.lastErr
	}

	c.finish(model.OutcomeCompleted)
	return nil
}

// CopyLink copies the failed deep link to the clipboard. The phase does
// not change so the user can still retry or cancel.
func (c *Controller) CopyLink() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseLinkFailed {
		return "", ErrWrongPhase
	}

	if err := c.clipboard.Copy(c.linkURL); err != nil {
		return c.linkURL, &DispatchError{Kind: DispatchClipboard, URL: c.linkURL, Err: err}
	}
	return c.linkURL, nil
}

// CancelLink gives up on the failed deep link.
func (c *Controller) CancelLink() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseLinkFailed {
		return ErrWrongPhase
	}
	c.finish(model.OutcomeLinkFailed)
	return nil
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Phase:   c.phase,
		LinkURL: c.linkURL,
		Err:     c.lastErr,
	}
	if c.session != nil {
		snap.Active = true
		snap.Session = *c.session
	}
	return snap
}

// Events exposes the raw event channel. It is closed by Close.
func (c *Controller) Events() <-chan EventMsg {
	return c.events
}

// WaitForEvent returns a tea.Cmd that blocks for the next controller event.
// Call it again after handling each EventMsg to keep listening.
func (c *Controller) WaitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-c.events
		if !ok {
			return nil
		}
		return ev
	}
}

// Close cancels pending timers and speech. The controller rejects new
// sessions afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.stopTick()
	c.stopGrace()
	if c.phase == PhaseAnnouncing {
		_ = c.speaker.Stop()
	}
	c.closed = true
	close(c.events)
}

// scheduleTick arms the next tick. Caller holds mu.
func (c *Controller) scheduleTick() {
	c.tickSeq++
	seq, id := c.tickSeq, c.session.ID
	c.cancelTick = c.sched.AfterFunc(c.tickInterval, func() {
		c.onTick(id, seq)
	})
}

// stopTick cancels the pending tick and invalidates any callback that has
// already fired but not yet acquired the lock. Caller holds mu.
func (c *Controller) stopTick() {
	if c.cancelTick != nil {
		c.cancelTick()
		c.cancelTick = nil
	}
	c.tickSeq++
}

func (c *Controller) stopGrace() {
	if c.cancelGrace != nil {
		c.cancelGrace()
		c.cancelGrace = nil
	}
}

func (c *Controller) onTick(id string, seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil || c.session.ID != id || c.tickSeq != seq || c.phase != PhaseRunning {
		return
	}
	c.cancelTick = nil
	c.advance()
}

// advance applies one tick and either re-arms or completes. Caller holds mu.
func (c *Controller) advance() {
	if c.session.Tick() {
		c.complete()
		return
	}
	c.scheduleTick()
	c.emit(EventMsg{Kind: EventTick, SessionID: c.session.ID, Remaining: c.session.TimeRemaining})
}

// complete runs the completion dispatch exactly once per session. Caller
// holds mu.
func (c *Controller) complete() {
	s := c.session
	c.logger.Info("timer completed", "session", s.ID, "action", string(s.Action.Type))

	if c.permitted {
		if err := c.notifier.Notify(NotificationTitle, NotificationBody, true); err != nil {
			c.logger.Warn("notify", "err", err)
		}
	}

	switch s.Action.Type {
	case model.ActionAnnouncement:
		text := strings.TrimSpace(s.Action.Content)
		if text == "" {
			text = fallbackAnnouncement
		}
		if err := c.speaker.Speak(text); err != nil {
			c.lastErr = &DispatchError{Kind: DispatchSpeech, Err: err}
			c.phase = PhaseAudioError
			c.logger.Error("announcement failed", "session", s.ID, "err", err)
			c.emit(EventMsg{Kind: EventAudioError, SessionID: s.ID, Err: c.lastErr})
			return
		}
		c.phase = PhaseAnnouncing
		id := s.ID
		c.cancelGrace = c.sched.AfterFunc(c.grace, func() {
			c.onGraceElapsed(id)
		})
		c.emit(EventMsg{Kind: EventAnnouncing, SessionID: s.ID})

	case model.ActionAlarm:
		c.phase = PhaseAlarm
		c.emit(EventMsg{Kind: EventAlarm, SessionID: s.ID})

	case model.ActionTask:
		task, ok := taskcmd.Parse(s.Action.Content)
		if !ok {
			c.logger.Warn("task command no longer parses", "session", s.ID, "content", s.Action.Content)
			c.finish(model.OutcomeCompleted)
			return
		}
		s.Action.Parsed = task
		c.linkURL = taskcmd.DeepLink(*task)
		if err := c.opener.Open(c.linkURL); err != nil {
			c.lastErr = &DispatchError{Kind: DispatchOpenURL, URL: c.linkURL, Err: err}
			c.phase = PhaseLinkFailed
			c.logger.Warn("open link failed", "session", s.ID, "url", c.linkURL, "err", err)
			c.emit(EventMsg{Kind: EventLinkFailed, SessionID: s.ID, Err: c.lastErr})
			return
		}
		c.finish(model.OutcomeCompleted)

	default:
		c.finish(model.OutcomeCompleted)
	}
}

func (c *Controller) onGraceElapsed(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil || c.session.ID != id || c.phase != PhaseAnnouncing {
		return
	}
	c.cancelGrace = nil
	c.finish(model.OutcomeCompleted)
}

// finish records the outcome and returns to idle. Caller holds mu.
func (c *Controller) finish(outcome model.Outcome) {
	c.stopTick()
	c.stopGrace()

	s := c.session
	if s != nil {
		c.record(s, outcome)
	}

	id := ""
	if s != nil {
		id = s.ID
	}

	c.session = nil
	c.phase = PhaseIdle
	c.linkURL = ""
	c.lastErr = nil

	c.emit(EventMsg{Kind: EventReset, SessionID: id, Outcome: outcome})
}

func (c *Controller) record(s *Session, outcome model.Outcome) {
	entry := model.HistoryEntry{
		SessionID:       s.ID,
		ActionType:      s.Action.Type,
		Content:         s.Action.Content,
		DurationSeconds: s.Duration.TotalSeconds(),
		Outcome:         outcome,
		StartedAt:       s.StartedAt,
		EndedAt:         c.now(),
	}
	if s.Action.Parsed != nil {
		entry.TaskKind = s.Action.Parsed.Kind
		entry.DeepLink = taskcmd.DeepLink(*s.Action.Parsed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err := c.recorder.RecordSession(ctx, entry); err != nil {
		c.logger.Error("record session", "session", s.ID, "err", err)
	}
}

// emit sends without blocking. Caller holds mu.
func (c *Controller) emit(ev EventMsg) {
	if c.closed {
		return
	}
	select {
	case c.events <- ev:
	default:
		c.logger.Debug("event dropped", "kind", ev.Kind)
	}
}

type nopNotifier struct{}

func (nopNotifier) RequestPermission() bool           { return false }
func (nopNotifier) Notify(string, string, bool) error { return nil }

type nopSpeaker struct{}

func (nopSpeaker) Speak(string) error { return nil }
func (nopSpeaker) Stop() error        { return nil }

type nopOpener struct{}

func (nopOpener) Open(string) error { return nil }

type nopClipboard struct{}

func (nopClipboard) Copy(string) error { return nil }

type nopRecorder struct{}

func (nopRecorder) RecordSession(context.Context, model.HistoryEntry) error { return nil }
