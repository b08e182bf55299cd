package cli

import (
	"fmt"

	"github.com/alexanderramin/gardenplan/internal/cli/formatter"
	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/spf13/cobra"
)

func newPlantingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "planting",
		Aliases: []string{"sow"},
		Short:   "Schedule plants into slots",
	}

	cmd.AddCommand(
		newPlantingAddCmd(app),
		newPlantingDropCmd(app),
		newPlantingRemoveCmd(app),
		newPlantingListCmd(app),
	)

	return cmd
}

func newPlantingAddCmd(app *App) *cobra.Command {
	var week weekValue

	cmd := &cobra.Command{
		Use:   "add BED SLOT PLANT",
		Short: "Plant into a slot starting at a week",
		Long:  "Plant into a slot starting at --week (defaults to the current week). The planting\nlasts for the plant's growth duration, cut short at week 52.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := app.Garden.State(ctx)
			if err != nil {
				return err
			}
			bed, slot, err := resolveBedSlot(st.Garden, args[0], args[1])
			if err != nil {
				return err
			}
			p, err := app.Garden.PlantAt(ctx, bed.ID, slot.ID, args[2], week.or(st.CurrentWeek))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Planted %s in %s #%s for %s\n",
				p.Plant, bed.Name, slot.Number, domain.FormatWeekRange(p.StartWeek, p.EndWeek))
			return nil
		},
	}

	cmd.Flags().Var(&week, "week", "Start week (defaults to the current week)")

	return cmd
}

func newPlantingDropCmd(app *App) *cobra.Command {
	var at pointValue

	cmd := &cobra.Command{
		Use:   "drop PLANT",
		Short: "Plant into whatever slot covers a cell, this week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !at.set {
				return fmt.Errorf("--at is required")
			}
			p, err := app.Garden.DropAt(cmd.Context(), at.pos.X, at.pos.Y, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Planted %s at %s for %s\n",
				p.Plant, at.String(), domain.FormatWeekRange(p.StartWeek, p.EndWeek))
			return nil
		},
	}

	cmd.Flags().Var(&at, "at", "Grid cell")

	return cmd
}

func newPlantingRemoveCmd(app *App) *cobra.Command {
	var at pointValue
	var week weekValue

	cmd := &cobra.Command{
		Use:   "remove [BED SLOT]",
		Short: "Remove a planting",
		Long:  "Remove a planting, either from BED SLOT by its --week start, or the one\nactive this week at the --at cell.",
		Args: func(cmd *cobra.Command, args []string) error {
			if at.set {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if at.set {
				p, err := app.Garden.RemoveAt(ctx, at.pos.X, at.pos.Y)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Removed %s (%s) at %s\n", p.Plant, domain.FormatWeekRange(p.StartWeek, p.EndWeek), at.String())
				return nil
			}

			if week.week == 0 {
				return fmt.Errorf("--week is required with BED SLOT")
			}
			st, err := app.Garden.State(ctx)
			if err != nil {
				return err
			}
			bed, slot, err := resolveBedSlot(st.Garden, args[0], args[1])
			if err != nil {
				return err
			}
			var found *domain.Planting
			for i := range slot.Plantings {
				if slot.Plantings[i].StartWeek == week.week {
					found = &slot.Plantings[i]
					break
				}
			}
			if found == nil {
				return fmt.Errorf("no planting starting in week %d in %s #%s: %w", week.week, bed.Name, slot.Number, domain.ErrNotFound)
			}
			if _, err := app.Garden.Dispatch(ctx, domain.RemovePlanting{BedID: bed.ID, SlotID: slot.ID, StartWeek: week.week}); err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed %s (%s) from %s #%s\n",
				found.Plant, domain.FormatWeekRange(found.StartWeek, found.EndWeek), bed.Name, slot.Number)
			return nil
		},
	}

	cmd.Flags().Var(&at, "at", "Grid cell whose active planting to remove")
	cmd.Flags().Var(&week, "week", "Start week of the planting")

	return cmd
}

func newPlantingListCmd(app *App) *cobra.Command {
	var week weekValue

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every planting",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			if st.Summary().Plantings == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing planted yet.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlantings(st, week.or(st.CurrentWeek)))
			return nil
		},
	}

	cmd.Flags().Var(&week, "week", "Week the status column is relative to")

	return cmd
}
