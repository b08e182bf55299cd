package cli

import (
	"fmt"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show or move the current week",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Week %d\n", st.CurrentWeek)
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set WEEK",
			Short: "Jump to a week (1-52)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := parseWeek(args[0])
				if err != nil {
					return err
				}
				return setWeek(cmd, app, w)
			},
		},
		&cobra.Command{
			Use:   "next",
			Short: "Move to the next week",
			RunE: func(cmd *cobra.Command, args []string) error {
				return stepWeek(cmd, app, 1)
			},
		},
		&cobra.Command{
			Use:   "prev",
			Short: "Move to the previous week",
			RunE: func(cmd *cobra.Command, args []string) error {
				return stepWeek(cmd, app, -1)
			},
		},
	)

	return cmd
}

// stepWeek moves the current week by delta, stopping at the ends of the
// year.
func stepWeek(cmd *cobra.Command, app *App, delta int) error {
	st, err := app.Garden.State(cmd.Context())
	if err != nil {
		return err
	}
	target := min(max(st.CurrentWeek+delta, domain.MinWeek), domain.MaxWeek)
	if target == st.CurrentWeek {
		fmt.Fprintf(cmd.OutOrStdout(), "Already at week %d\n", target)
		return nil
	}
	return setWeek(cmd, app, target)
}

func setWeek(cmd *cobra.Command, app *App, week int) error {
	st, err := app.Garden.Dispatch(cmd.Context(), domain.SetCurrentWeek{Week: week})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Week %d\n", st.CurrentWeek)
	return nil
}
