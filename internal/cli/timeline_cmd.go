package cli

import (
	"fmt"

	"github.com/alexanderramin/gardenplan/internal/cli/formatter"
	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	var from, to weekValue

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show slot occupancy across the year",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			start, end := from.or(domain.MinWeek), to.or(domain.MaxWeek)
			if start > end {
				return fmt.Errorf("--from %d is after --to %d: %w", start, end, domain.ErrRange)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTimeline(st, start, end, st.CurrentWeek))
			return nil
		},
	}

	cmd.Flags().Var(&from, "from", "First week shown")
	cmd.Flags().Var(&to, "to", "Last week shown")

	return cmd
}
