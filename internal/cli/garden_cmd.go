package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gardenplan/internal/cli/formatter"
	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/spf13/cobra"
)

func newGardenCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "garden",
		Short: "Show and configure the garden",
	}

	cmd.AddCommand(
		newGardenShowCmd(app),
		newGardenRenameCmd(app),
		newGardenResizeCmd(app),
		newGardenClearCmd(app),
		newGardenCheckCmd(app),
		newGardenResetCmd(app),
	)

	return cmd
}

func newGardenShowCmd(app *App) *cobra.Command {
	var week weekValue

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Draw the garden grid for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			w := week.or(st.CurrentWeek)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatSummary(st.Summary()))
			if w != st.CurrentWeek {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Showing week %d", w)))
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.RenderGrid(st, w, formatter.GridOptions{}))
			return nil
		},
	}

	cmd.Flags().Var(&week, "week", "Week to show (defaults to the current week)")

	return cmd
}

func newGardenRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename NAME",
		Short: "Rename the garden",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Garden.Dispatch(cmd.Context(), domain.RenameGarden{NewName: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Garden renamed to %s\n", st.Garden.Name)
			return nil
		},
	}
}

func newGardenResizeCmd(app *App) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "resize",
		Short: "Change the grid size",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Garden.Dispatch(cmd.Context(), domain.UpdateGridSize{Width: width, Height: height})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Grid is now %dx%d\n", st.Garden.GridSize.Width, st.Garden.GridSize.Height)
			if off := st.OutOfBoundsBeds(); len(off) > 0 {
				names := make([]string, len(off))
				for i, b := range off {
					names[i] = b.Name
				}
				fmt.Fprintln(out, formatter.StyleYellow.Render(
					fmt.Sprintf("Warning: %s outside the grid: %s", formatter.Plural(len(off), "bed is", "beds are"), strings.Join(names, ", "))))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, fmt.Sprintf("Grid width (%d-%d)", domain.MinGridSize, domain.MaxGridSize))
	cmd.Flags().IntVar(&height, "height", 0, fmt.Sprintf("Grid height (%d-%d)", domain.MinGridSize, domain.MaxGridSize))
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

func newGardenClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every planting, keeping beds and slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := app.Garden.Dispatch(cmd.Context(), domain.ClearAllPlantings{}); err != nil {
				return err
			}
			n := before.Summary().Plantings
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", formatter.Plural(n, "planting", "plantings"))
			return nil
		},
	}
}

func newGardenCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Look for missing plants, off-grid beds and bad neighbours",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Status.Check(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCheck(report.Week, report.Dangling, report.OutOfBounds, report.Conflicts))
			return nil
		},
	}
}

func newGardenResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace everything with the starter garden",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("reset deletes all beds, slots, plantings and custom plants; rerun with --force")
			}
			if err := app.Garden.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Garden reset to defaults")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm the reset")

	return cmd
}
