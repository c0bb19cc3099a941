package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/kronaut/internal/app"
	"github.com/nhle/kronaut/internal/logging"
	"github.com/nhle/kronaut/internal/model"
	"github.com/nhle/kronaut/internal/platform"
	"github.com/nhle/kronaut/internal/timer"
)

func runUI(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := logging.OpenFile(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if err := ensureConfigFile(opts.configPath); err != nil {
		logger.Warn("writing default config", "err", err)
	}

	history, err := openHistory(cfg, logger)
	if err != nil {
		return err
	}
	defer history.Close()

	if n, err := history.Prune(ctx, cfg.Storage.RetentionDays, time.Now()); err != nil {
		logger.Warn("pruning history", "err", err)
	} else if n > 0 {
		logger.Info("pruned history", "removed", n)
	}

	ctrl := timer.NewController(timer.Dependencies{
		Notifier:  platform.NewNotifier(cfg.Notifications, logger),
		Speaker:   platform.NewSpeaker(cfg.Speech, logger),
		Opener:    platform.NewOpener(),
		Clipboard: platform.NewClipboard(),
		Recorder:  history,
		Logger:    logger,
	}, timer.Options{
		TickInterval:      cfg.TickInterval(),
		AnnouncementGrace: cfg.AnnouncementGrace(),
	})
	defer ctrl.Close()

	m := app.New(ctrl, app.Options{
		SplashDelay: cfg.SplashDelay(),
		Logger:      logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

// ensureConfigFile writes the default configuration when path does not
// exist yet.
func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return model.SaveConfig(path, model.DefaultAppConfig())
}
