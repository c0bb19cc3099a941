package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	gosync "sync"

	"github.com/charmbracelet/log"

	"github.com/nhle/kronaut/internal/model"
)

// baseWordsPerMinute is the engines' normal speaking rate.
const baseWordsPerMinute = 175

// Speaker speaks text with the platform's command-line speech engine:
// say on macOS, espeak elsewhere, or whatever speech.command names.
type Speaker struct {
	command string
	rate    float64
	logger  *log.Logger

	mu  gosync.Mutex
	cmd *exec.Cmd
}

// NewSpeaker creates a Speaker from config.
func NewSpeaker(cfg model.SpeechConfig, logger *log.Logger) *Speaker {
	return &Speaker{
		command: strings.TrimSpace(cfg.Command),
		rate:    cfg.Rate,
		logger:  logger,
	}
}

// commandLine returns the program and arguments used to speak text.
func (s *Speaker) commandLine(text string) (string, []string) {
	if s.command != "" {
		fields := strings.Fields(s.command)
		return fields[0], append(fields[1:], text)
	}

	rate := s.rate
	if rate <= 0 {
		rate = 1
	}
	wpm := strconv.Itoa(int(baseWordsPerMinute * rate))

	if runtime.GOOS == "darwin" {
		return "say", []string{"-r", wpm, text}
	}
	return "espeak", []string{"-s", wpm, text}
}

// Speak starts speaking text and returns once the engine has launched.
// A previous utterance still playing is stopped first.
func (s *Speaker) Speak(text string) error {
	name, args := s.commandLine(text)

	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("speech engine %q not available: %w", name, err)
	}

	if err := s.Stop(); err != nil && s.logger != nil {
		s.logger.Warn("stopping previous speech", "err", err)
	}

	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting speech engine: %w", err)
	}

	s.mu.Lock()
	s.cmd = cmd
	s.mu.Unlock()

	go func() {
		waitErr := cmd.Wait()

		s.mu.Lock()
		if s.cmd == cmd {
			s.cmd = nil
		}
		s.mu.Unlock()

		if waitErr != nil && s.logger != nil {
			s.logger.Debug("speech engine exited", "err", waitErr)
		}
	}()

	return nil
}

// Stop cancels the current utterance, if any.
func (s *Speaker) Stop() error {
	s.mu.Lock()
	cmd := s.cmd
	s.cmd = nil
	s.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return nil
	}
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("stopping speech engine: %w", err)
	}
	return nil
}
