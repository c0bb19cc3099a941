// Package cli wires the kronaut command tree.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nhle/kronaut/internal/logging"
	"github.com/nhle/kronaut/internal/model"
	"github.com/nhle/kronaut/internal/store"
)

// Build metadata, set with -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// New returns the root command. Without a subcommand it runs the timer UI.
func New() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "kronaut",
		Short: "The easy timer: count down, then announce, alarm or launch a task.",
		Example: `
kronaut
kronaut --log-level debug
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", model.DefaultConfigPath(), "Path to the config file.")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level.")

	addCommands(cmd, opts)
	return cmd
}

// addCommands registers the subcommands on topLevel.
func addCommands(topLevel *cobra.Command, opts *rootOptions) {
	addParse(topLevel)
	addHistory(topLevel, opts)
	addVersion(topLevel)
}

func (o *rootOptions) loadConfig() (*model.AppConfig, error) {
	cfg, err := model.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

func openHistory(cfg *model.AppConfig, logger *log.Logger) (*store.SQLiteStore, error) {
	dir := filepath.Dir(cfg.Storage.DatabasePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}

	s, err := store.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	logger.Debug("history opened", "path", cfg.Storage.DatabasePath)
	return s, nil
}

func stderrLogger(cfg *model.AppConfig) *log.Logger {
	return logging.New(logging.Options{Level: cfg.Log.Level, Prefix: "kronaut"})
}
