package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ksaito/studypace/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view [YYYY-MM]",
		Short: "Browse monthly charts interactively",
		Long:  "Open an interactive month browser. Use ←/→ to change month, g to jump, r to resync, q to quit. Without a terminal it falls back to a one-shot render.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := resolveMonthArg(args)
			if err != nil {
				return err
			}

			if app.IsInteractive == nil || !app.IsInteractive() {
				view, err := app.Progress.MonthView(cmd.Context(), month)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonthView(view))
				return nil
			}

			model := newViewModel(app, month)
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}
