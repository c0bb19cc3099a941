package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/nhle/kronaut/internal/taskcmd"
)

func addParse(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "parse <text...>",
		Short: "Show how a task command resolves.",
		Example: `
kronaut parse Call Mom
kronaut parse "open google.com"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			task, ok := taskcmd.Parse(text)
			if !ok {
				return fmt.Errorf("%q is not a task command, try: %s",
					text, strings.Join(taskcmd.Examples(), ", "))
			}

			bold := color.New(color.Bold)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("Kind"), string(task.Kind))
			tbl.AddRow(bold.Sprint("Target"), task.Target)
			tbl.AddRow(bold.Sprint("Will"), taskcmd.Describe(*task))
			tbl.AddRow(bold.Sprint("Link"), taskcmd.DeepLink(*task))

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
