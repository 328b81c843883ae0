package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ksaito/studypace/internal/config"
	"github.com/spf13/cobra"
)

func newSetupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Store Notion credentials in ~/.studypace/config.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			fc := config.FileConfig{
				Token:          app.Config.Notion.Token,
				LogDatabaseID:  app.Config.LogDatabaseID,
				GoalDatabaseID: app.Config.GoalDatabaseID,
			}

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Notion integration token").
						Description("Create one at notion.so/my-integrations and share both databases with it.").
						EchoMode(huh.EchoModePassword).
						Validate(requireValue("token")).
						Value(&fc.Token),
					huh.NewInput().
						Title("Study log database ID").
						Validate(requireValue("database id")).
						Value(&fc.LogDatabaseID),
					huh.NewInput().
						Title("Monthly goal database ID").
						Validate(requireValue("database id")).
						Value(&fc.GoalDatabaseID),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}

			path, err := config.DefaultFilePath()
			if err != nil {
				return err
			}
			if err := config.Save(path, fc); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s. Run 'studypace check' to verify the connection.\n", path)
			return nil
		},
	}
}

func requireValue(name string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
