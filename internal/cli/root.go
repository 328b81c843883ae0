package cli

import (
	"github.com/ksaito/studypace/internal/config"
	"github.com/ksaito/studypace/internal/notion"
	"github.com/ksaito/studypace/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and collaborators CLI commands use.
type App struct {
	Sync     service.SyncService
	Progress service.ProgressService
	Notion   notion.Client
	Config   config.Config

	// IsInteractive reports whether stdin is attached to a terminal.
	// The interactive view falls back to a one-shot render without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "studypace" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studypace",
		Short:         "Study progress tracker backed by Notion",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSyncCmd(app),
		newMonthCmd(app),
		newStatsCmd(app),
		newViewCmd(app),
		newCheckCmd(app),
		newSetupCmd(app),
	)

	return root
}
