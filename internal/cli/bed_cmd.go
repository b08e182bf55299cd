package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gardenplan/internal/cli/formatter"
	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/spf13/cobra"
)

func newBedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bed",
		Short: "Manage beds",
	}

	cmd.AddCommand(
		newBedAddCmd(app),
		newBedListCmd(app),
		newBedShowCmd(app),
		newBedRenameCmd(app),
		newBedRemoveCmd(app),
	)

	return cmd
}

func newBedAddCmd(app *App) *cobra.Command {
	var from, to pointValue

	cmd := &cobra.Command{
		Use:   "add [NAME]",
		Short: "Draw a new bed",
		Long:  "Draw a new bed covering the rectangle between --from and --to (inclusive).\nWithout a name the bed is called \"Bed N\".",
		RunE: func(cmd *cobra.Command, args []string) error {
			rect, err := rectFlags(&from, &to)
			if err != nil {
				return err
			}
			st, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")
			if name == "" {
				name = st.Garden.NextBedName()
			}

			bed := domain.NewBed(name, rect)
			if _, err := app.Garden.Dispatch(cmd.Context(), domain.AddBed{Bed: bed}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added bed %s (%s) at %d,%d size %dx%d\n",
				bed.Name, formatter.TruncID(bed.ID), rect.X, rect.Y, rect.Width, rect.Height)
			if !st.Garden.GridSize.InBounds(rect.X+rect.Width-1, rect.Y+rect.Height-1) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render("Warning: the bed extends past the grid"))
			}
			return nil
		},
	}

	addRectFlags(cmd.Flags(), &from, &to, "bed")

	return cmd
}

func newBedListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List beds",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			if len(st.Garden.Beds) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No beds yet.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBedList(st.Garden))
			return nil
		},
	}
}

func newBedShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show BED",
		Short: "Show a bed with its slots and plantings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			bed, err := resolveBed(st.Garden, args[0])
			if err != nil {
				return err
			}
			detail, err := app.Inspect.Bed(cmd.Context(), bed.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBedDetail(detail))
			return nil
		},
	}
}

func newBedRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename BED NAME",
		Short: "Rename a bed",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			bed, err := resolveBed(st.Garden, args[0])
			if err != nil {
				return err
			}
			oldName := bed.Name
			bed.Name = strings.Join(args[1:], " ")
			if strings.TrimSpace(bed.Name) == "" {
				return fmt.Errorf("bed name is required: %w", domain.ErrFormat)
			}
			if _, err := app.Garden.Dispatch(cmd.Context(), domain.UpdateBed{BedID: bed.ID, Bed: bed}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed bed %s to %s\n", oldName, bed.Name)
			return nil
		},
	}
}

func newBedRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove BED",
		Short: "Remove a bed with its slots and plantings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			bed, err := resolveBed(st.Garden, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Garden.Dispatch(cmd.Context(), domain.DeleteBed{BedID: bed.ID}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed bed %s and %s\n", bed.Name, formatter.Plural(len(bed.Slots), "slot", "slots"))
			return nil
		},
	}
}
