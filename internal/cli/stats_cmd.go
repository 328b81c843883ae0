package cli

import (
	"fmt"

	"github.com/ksaito/studypace/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show totals, pace and per-month achievement",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Progress.Summary(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(summary))
			return nil
		},
	}
}
