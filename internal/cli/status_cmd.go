package cli

import (
	"fmt"

	"github.com/alexanderramin/gardenplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a garden overview for the current week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sum, err := app.Status.Summary(ctx)
			if err != nil {
				return err
			}
			report, err := app.Status.Check(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatSummary(sum))
			if report.OK() {
				fmt.Fprintln(out, formatter.StyleGreen.Render("No problems found"))
				return nil
			}
			issues := len(report.Dangling) + len(report.OutOfBounds) + len(report.Conflicts)
			fmt.Fprintln(out, formatter.StyleYellow.Render(
				fmt.Sprintf("%s found; run 'gardenplan garden check' for details", formatter.Plural(issues, "problem", "problems"))))
			return nil
		},
	}
}
