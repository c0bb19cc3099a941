package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/nhle/kronaut/internal/model"
	"github.com/nhle/kronaut/internal/store"
)

var outcomes = []model.Outcome{
	model.OutcomeCompleted,
	model.OutcomeStopped,
	model.OutcomeAudioError,
	model.OutcomeLinkFailed,
}

func addHistory(topLevel *cobra.Command, opts *rootOptions) {
	limit := 20
	outcome := ""

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List finished timer sessions.",
		Example: `
kronaut history
kronaut history --outcome stopped --limit 5
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := store.HistoryFilter{Limit: limit}
			if outcome != "" {
				o, err := parseOutcome(outcome)
				if err != nil {
					return err
				}
				filter.Outcome = &o
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger := stderrLogger(cfg)

			s, err := openHistory(cfg, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return printHistory(ctx, cmd, s, filter)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of sessions to show.")
	cmd.Flags().StringVar(&outcome, "outcome", "", "Only show one outcome: completed, stopped, audio_error or link_failed.")

	topLevel.AddCommand(cmd)
}

func parseOutcome(s string) (model.Outcome, error) {
	for _, o := range outcomes {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown outcome %q", s)
}

func printHistory(ctx context.Context, cmd *cobra.Command, s store.HistoryStore, filter store.HistoryFilter) error {
	out := cmd.OutOrStdout()

	entries, err := s.GetSessions(ctx, filter)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(out, "No sessions recorded.")
		return nil
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("ENDED"), bold.Sprint("ACTION"), bold.Sprint("CONTENT"),
		bold.Sprint("DURATION"), bold.Sprint("OUTCOME"))
	for _, e := range entries {
		content := e.Content
		if content == "" {
			content = faint.Sprint("-")
		}
		tbl.AddRow(
			e.EndedAt.Local().Format(time.DateTime),
			string(e.ActionType),
			content,
			model.FormatClock(e.DurationSeconds),
			string(e.Outcome),
		)
	}
	_, _ = fmt.Fprintln(out, tbl)

	counts, err := s.CountByOutcome(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, summarize(counts))
	return nil
}

func summarize(counts map[model.Outcome]int) string {
	keys := make([]string, 0, len(counts))
	for o, n := range counts {
		keys = append(keys, fmt.Sprintf("%s: %d", o, n))
	}
	sort.Strings(keys)
	return strings.Join(keys, "  ")
}
