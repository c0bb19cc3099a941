// Package platform wraps the operating-system services a timer completion
// uses: desktop notifications, speech, URL handlers and the clipboard.
package platform

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gen2brain/beeep"

	"github.com/nhle/kronaut/internal/model"
)

// Swapped out in tests.
var (
	notifyFn = func(title, body string) error { return beeep.Notify(title, body, "") }
	alertFn  = func(title, body string) error { return beeep.Alert(title, body, "") }
)

// Notifier posts desktop notifications through beeep.
type Notifier struct {
	enabled bool
	logger  *log.Logger
}

// NewNotifier creates a Notifier. A disabled notifier declines permission
// and never reaches the desktop.
func NewNotifier(cfg model.NotificationConfig, logger *log.Logger) *Notifier {
	return &Notifier{enabled: cfg.Enabled, logger: logger}
}

// RequestPermission reports whether notifications may be shown.
func (n *Notifier) RequestPermission() bool {
	return n.enabled
}

// Notify shows a notification. requireInteraction uses an alert, which
// also plays the system sound and stays until dismissed where supported.
func (n *Notifier) Notify(title, body string, requireInteraction bool) error {
	if !n.enabled {
		return nil
	}

	send := notifyFn
	if requireInteraction {
		send = alertFn
	}
	if err := send(title, body); err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}

	if n.logger != nil {
		n.logger.Debug("notification sent", "title", title)
	}
	return nil
}
