package cli

import (
	"fmt"
	"time"

	"github.com/ksaito/studypace/internal/cli/formatter"
	"github.com/ksaito/studypace/internal/domain"
	"github.com/spf13/cobra"
)

func newMonthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show the cumulative chart for one month",
		Long:  "Render the daily cumulative chart for a month. Accepts 2026-01 or 2026-Jan; defaults to the current month.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := resolveMonthArg(args)
			if err != nil {
				return err
			}

			view, err := app.Progress.MonthView(cmd.Context(), month)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonthView(view))
			return nil
		},
	}
}

func resolveMonthArg(args []string) (domain.Month, error) {
	if len(args) == 0 {
		return domain.MonthOf(time.Now()), nil
	}
	month, err := domain.ParseMonth(args[0])
	if err != nil {
		return domain.Month{}, fmt.Errorf("invalid month %q: expected YYYY-MM or YYYY-Mon", args[0])
	}
	return month, nil
}
