package platform

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when no clipboard utility exists.
var ErrClipboardUnsupported = errors.New("clipboard not supported on this system")

var writeClipboardFn = clipboard.WriteAll

// Clipboard copies text to the system clipboard.
type Clipboard struct{}

// NewClipboard creates a Clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Copy writes text to the clipboard.
func (c *Clipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	if err := writeClipboardFn(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
