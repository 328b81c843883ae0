package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Refresh the local snapshot from Notion",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Config.Validate(); err != nil {
				return err
			}

			result, err := app.Sync.Refresh(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Synced %d observations (%d pages) and %d goals (%d pages).\n",
				result.Observations, result.LogPages, result.Goals, result.GoalPages)
			return nil
		},
	}
}
