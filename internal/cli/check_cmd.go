package cli

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/ksaito/studypace/internal/cli/formatter"
	"github.com/ksaito/studypace/internal/notion"
	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify credentials and inspect database schemas",
		Long:  "Confirm the Notion token works, then query both databases and list the property names and types found on the first record.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if err := app.Config.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			user, err := app.Notion.Me(ctx)
			if err != nil {
				return fmt.Errorf("token check failed: %w", err)
			}
			fmt.Fprintf(out, "%s connected as %s\n", formatter.StyleGreen.Render("✓"), user.DisplayName())

			if err := checkDatabase(ctx, out, app, "study log", app.Config.LogDatabaseID); err != nil {
				return err
			}
			return checkDatabase(ctx, out, app, "monthly goals", app.Config.GoalDatabaseID)
		},
	}
}

func checkDatabase(ctx context.Context, out io.Writer, app *App, label, id string) error {
	pages, err := app.Notion.QueryDatabase(ctx, id)
	if err != nil {
		return fmt.Errorf("querying %s database: %w", label, err)
	}
	fmt.Fprintf(out, "%s %s database: %d records\n", formatter.StyleGreen.Render("✓"), label, len(pages))
	if len(pages) == 0 {
		return nil
	}
	for _, line := range describeProperties(pages[0]) {
		fmt.Fprintf(out, "    %s\n", line)
	}
	return nil
}

// describeProperties lists the first record's property names and types,
// sorted for stable output.
func describeProperties(page notion.Page) []string {
	names := make([]string, 0, len(page.Properties))
	for name := range page.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s (%s)", name, page.Properties[name].Type))
	}
	return lines
}
