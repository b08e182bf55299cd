package cli

import (
	"fmt"

	"github.com/alexanderramin/gardenplan/internal/cli/formatter"
	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/spf13/cobra"
)

func newSlotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Manage planting slots inside beds",
	}

	cmd.AddCommand(
		newSlotAddCmd(app),
		newSlotListCmd(app),
		newSlotUpdateCmd(app),
		newSlotRemoveCmd(app),
	)

	return cmd
}

func newSlotAddCmd(app *App) *cobra.Command {
	var from, to pointValue
	var number string

	cmd := &cobra.Command{
		Use:   "add BED",
		Short: "Draw a slot inside a bed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rect, err := rectFlags(&from, &to)
			if err != nil {
				return err
			}
			st, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			bed, err := resolveBed(st.Garden, args[0])
			if err != nil {
				return err
			}
			if number == "" {
				number = bed.NextSlotNumber()
			}

			slot := domain.NewSlot(number, rect)
			if _, err := app.Garden.Dispatch(cmd.Context(), domain.AddSlot{BedID: bed.ID, Slot: slot}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added slot #%s (%s) to %s at %d,%d size %dx%d\n",
				slot.Number, formatter.TruncID(slot.ID), bed.Name, rect.X, rect.Y, rect.Width, rect.Height)
			return nil
		},
	}

	addRectFlags(cmd.Flags(), &from, &to, "slot")
	cmd.Flags().StringVar(&number, "number", "", "Slot number (defaults to the next free one)")

	return cmd
}

func newSlotListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [BED]",
		Short: "List slots, optionally for one bed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			refs := st.Garden.SlotRefs()
			if len(args) == 1 {
				bed, err := resolveBed(st.Garden, args[0])
				if err != nil {
					return err
				}
				refs = filterRefs(refs, bed.ID)
			}
			if len(refs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No slots yet.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSlotList(st, refs))
			return nil
		},
	}
}

func newSlotUpdateCmd(app *App) *cobra.Command {
	var from, to pointValue
	var number string

	cmd := &cobra.Command{
		Use:   "update BED SLOT",
		Short: "Renumber or move a slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			bed, slot, err := resolveBedSlot(st.Garden, args[0], args[1])
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("number") {
				slot.Number = number
				changed = true
			}
			if from.set {
				rect, err := rectFlags(&from, &to)
				if err != nil {
					return err
				}
				slot.Position, slot.Size = rect.Position(), rect.Size()
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to update; pass --number or --from/--to")
			}

			if _, err := app.Garden.Dispatch(cmd.Context(), domain.UpdateSlot{BedID: bed.ID, SlotID: slot.ID, Slot: slot}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated slot #%s in %s\n", slot.Number, bed.Name)
			return nil
		},
	}

	addRectFlags(cmd.Flags(), &from, &to, "slot")
	cmd.Flags().StringVar(&number, "number", "", "New slot number")

	return cmd
}

func newSlotRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove BED SLOT",
		Short: "Remove a slot and its plantings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			bed, slot, err := resolveBedSlot(st.Garden, args[0], args[1])
			if err != nil {
				return err
			}
			if _, err := app.Garden.Dispatch(cmd.Context(), domain.DeleteSlot{BedID: bed.ID, SlotID: slot.ID}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed slot #%s from %s\n", slot.Number, bed.Name)
			return nil
		},
	}
}

func filterRefs(refs []domain.SlotRef, bedID string) []domain.SlotRef {
	var out []domain.SlotRef
	for _, r := range refs {
		if r.BedID == bedID {
			out = append(out, r)
		}
	}
	return out
}
