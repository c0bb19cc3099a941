package platform

import (
	"errors"
	"fmt"
	"io"

	"github.com/pkg/browser"
)

var openURLFn = browser.OpenURL

// ErrEmptyURL is returned when there is nothing to open.
var ErrEmptyURL = errors.New("empty url")

// Opener hands URLs (https:, tel:, mailto:) to the system handler.
type Opener struct{}

// NewOpener creates an Opener. The handler's own output is discarded so it
// cannot corrupt the terminal UI.
func NewOpener() *Opener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Opener{}
}

// Open launches the handler for url.
func (o *Opener) Open(url string) error {
	if url == "" {
		return ErrEmptyURL
	}
	if err := openURLFn(url); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}
