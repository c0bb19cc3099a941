package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/kronaut/internal/timer"
	"github.com/nhle/kronaut/internal/ui/overlay"
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayStop
	overlayAlarm
	overlayAudio
	overlayLink
	overlayNotice
)

// Dialog button messages.
type (
	confirmStopMsg  struct{}
	closeOverlayMsg struct{}
	acknowledgeMsg  struct{}
	retryLinkMsg    struct{}
	copyLinkMsg     struct{}
	cancelLinkMsg   struct{}
)

type permissionMsg struct {
	granted bool
}

func (m Model) requestPermission() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return permissionMsg{granted: ctrl.RequestNotificationPermission()}
	}
}

// startTimer hands the draft to the controller and switches to the
// countdown on success.
func (m *Model) startTimer() tea.Cmd {
	err := m.ctrl.Start(m.draft.duration, m.draft.action)
	switch {
	case err == nil:
		m.logger.Info("timer started", "duration", m.draft.duration, "action", m.draft.action.Type)
		return m.goTo(ScreenRunning)
	case timer.IsValidationError(err):
		var vErr *timer.ValidationError
		errors.As(err, &vErr)
		m.openNotice("Missing Information",
			"Please ensure you have set a valid duration and action before starting the timer.")
		m.overlay.SetNote(vErr.Message)
		return nil
	case errors.Is(err, timer.ErrSessionActive):
		m.logger.Warn("start ignored", "err", err)
		return m.goTo(ScreenRunning)
	default:
		m.logger.Error("start timer", "err", err)
		m.openNotice("Error", err.Error())
		return nil
	}
}

func (m *Model) togglePause() {
	if err := m.ctrl.TogglePause(); err != nil {
		m.logger.Debug("toggle pause", "err", err)
		return
	}
	m.running.SetSnapshot(m.ctrl.Snapshot())
}

func (m *Model) adjust(minutes int, add bool) {
	err := m.ctrl.Adjust(minutes, add)
	if err == nil {
		m.running.SetSnapshot(m.ctrl.Snapshot())
		return
	}

	var vErr *timer.ValidationError
	if errors.As(err, &vErr) {
		m.openNotice("Invalid Adjustment", vErr.Message)
		return
	}
	m.logger.Debug("adjust", "err", err)
}

func (m *Model) stopTimer() tea.Cmd {
	if err := m.ctrl.Stop(); err != nil {
		m.logger.Debug("stop", "err", err)
	}
	return m.syncController()
}

func (m *Model) acknowledge() tea.Cmd {
	if err := m.ctrl.Acknowledge(); err != nil {
		m.logger.Debug("acknowledge", "err", err)
	}
	m.closeOverlay()
	return m.syncController()
}

func (m *Model) retryLink() tea.Cmd {
	if err := m.ctrl.RetryLink(); err != nil {
		m.logger.Warn("retry link", "err", err)
		m.overlay.SetNote("Still unable to open the link. Copy it and open it manually.")
		return nil
	}
	m.closeOverlay()
	return m.syncController()
}

func (m *Model) copyLink() {
	url, err := m.ctrl.CopyLink()
	if err != nil {
		m.logger.Warn("copy link", "err", err)
		m.overlay.SetNote("Could not copy the link: " + url)
		return
	}
	m.overlay.SetNote("Link copied to clipboard.")
}

func (m *Model) cancelLink() tea.Cmd {
	if err := m.ctrl.CancelLink(); err != nil {
		m.logger.Debug("cancel link", "err", err)
	}
	m.closeOverlay()
	return m.syncController()
}

// syncController reconciles the screen and dialogs with the controller's
// phase.
func (m *Model) syncController() tea.Cmd {
	snap := m.ctrl.Snapshot()
	m.running.SetSnapshot(snap)

	switch snap.Phase {
	case timer.PhaseAlarm:
		if m.overlayKind != overlayAlarm {
			m.openDialog(overlayAlarm, overlay.New(m.keys, "⏰ Alarm", "Timer completed!",
				overlay.Button{Label: "Stop Alarm", Msg: acknowledgeMsg{}},
			).WithDismiss(acknowledgeMsg{}))
		}
	case timer.PhaseAudioError:
		if m.overlayKind != overlayAudio {
			m.openDialog(overlayAudio, overlay.New(m.keys, "Audio Playback Error",
				"Could not play the announcement audio. Please check your speech settings.",
				overlay.Button{Label: "OK", Msg: acknowledgeMsg{}},
			).WithDismiss(acknowledgeMsg{}))
		}
	case timer.PhaseLinkFailed:
		if m.overlayKind != overlayLink {
			m.openDialog(overlayLink, overlay.New(m.keys, "Unable to Open Link",
				"The link couldn't be opened automatically. You can:",
				overlay.Button{Label: "Try Opening Again", Msg: retryLinkMsg{}},
				overlay.Button{Label: "Copy Link", Msg: copyLinkMsg{}},
				overlay.Button{Label: "Cancel", Msg: cancelLinkMsg{}},
			).WithDismiss(cancelLinkMsg{}))
			m.overlay.SetNote(snap.LinkURL)
		}
	case timer.PhaseIdle:
		if m.screen != ScreenRunning {
			return nil
		}
		if m.overlayKind != overlayNotice {
			m.closeOverlay()
		}
		m.running.CloseAdjust()
		m.draft = defaultDraft()
		return m.goTo(ScreenDuration)
	default:
		if m.overlayKind == overlayAlarm || m.overlayKind == overlayAudio || m.overlayKind == overlayLink {
			m.closeOverlay()
		}
	}
	return nil
}

func (m *Model) openStopConfirm() {
	m.openDialog(overlayStop, overlay.New(m.keys, "Stop Timer?",
		"Are you sure you want to stop the timer? This action cannot be undone.",
		overlay.Button{Label: "Stop", Msg: confirmStopMsg{}},
		overlay.Button{Label: "Cancel", Msg: closeOverlayMsg{}},
	).WithDismiss(closeOverlayMsg{}))
}

func (m *Model) openNotice(title, message string) {
	m.openDialog(overlayNotice, overlay.New(m.keys, title, message,
		overlay.Button{Label: "OK", Msg: closeOverlayMsg{}},
	).WithDismiss(closeOverlayMsg{}))
}

func (m *Model) openDialog(kind overlayKind, o overlay.Model) {
	o.SetWidth(m.layout.ContentWidth() - 4)
	m.overlay = o
	m.overlayKind = kind
}

func (m *Model) closeOverlay() {
	m.overlay.Close()
	m.overlayKind = overlayNone
}
