package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/gardenplan/internal/cli/formatter"
	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newPlantCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plant",
		Short: "Manage the plant library",
	}

	cmd.AddCommand(
		newPlantAddCmd(app),
		newPlantListCmd(app),
		newPlantShowCmd(app),
		newPlantUpdateCmd(app),
		newPlantRemoveCmd(app),
	)

	return cmd
}

// plantFlags holds the flag-settable fields of a plant record.
type plantFlags struct {
	name       string
	image      string
	growth     int
	water      int
	sun        int
	season     string
	family     string
	spacing    int
	succession int
	sow        []int
	harvest    []int
	companions []string
	avoid      []string
}

func (f *plantFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "Plant name")
	fs.StringVar(&f.image, "image", "", "Icon shown in the grid (emoji)")
	fs.IntVar(&f.growth, "growth", 0, "Growth duration in weeks (1-52)")
	fs.IntVar(&f.water, "water", int(domain.NeedMedium), "Water need (1=low, 2=medium, 3=high)")
	fs.IntVar(&f.sun, "sun", int(domain.NeedMedium), "Sun need (1=low, 2=medium, 3=high)")
	fs.StringVar(&f.season, "season", "", "Season: spring, summer, fall or winter")
	fs.StringVar(&f.family, "family", "", "Botanical family")
	fs.IntVar(&f.spacing, "spacing", 0, "Spacing in cm")
	fs.IntVar(&f.succession, "succession", 0, "Weeks between succession sowings")
	fs.IntSliceVar(&f.sow, "sow", nil, "Sowing months (1-12)")
	fs.IntSliceVar(&f.harvest, "harvest", nil, "Harvest months (1-12)")
	fs.StringSliceVar(&f.companions, "companions", nil, "Plants that grow well nearby")
	fs.StringSliceVar(&f.avoid, "avoid", nil, "Plants to keep apart")
}

// apply copies every changed flag onto p.
func (f *plantFlags) apply(fs *pflag.FlagSet, p *domain.Plant) error {
	if fs.Changed("name") {
		p.Name = f.name
	}
	if fs.Changed("image") {
		p.Image = f.image
	}
	if fs.Changed("growth") {
		p.GrowthDuration = f.growth
	}
	if fs.Changed("water") {
		p.WaterNeed = domain.Need(f.water)
	}
	if fs.Changed("sun") {
		p.SunNeed = domain.Need(f.sun)
	}
	if fs.Changed("season") {
		season, err := domain.ParseSeason(f.season)
		if err != nil {
			return err
		}
		p.Season = season
	}
	if fs.Changed("family") {
		p.PlantFamily = f.family
	}
	if fs.Changed("spacing") {
		p.SpacingCm = f.spacing
	}
	if fs.Changed("succession") {
		p.SuccessionInterval = f.succession
	}
	if fs.Changed("sow") {
		p.PlantingMonths = f.sow
	}
	if fs.Changed("harvest") {
		p.HarvestMonths = f.harvest
	}
	if fs.Changed("companions") {
		p.CompanionPlants = f.companions
	}
	if fs.Changed("avoid") {
		p.IncompatiblePlants = f.avoid
	}
	return nil
}

func newPlantAddCmd(app *App) *cobra.Command {
	var flags plantFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a plant to the library",
		Long:  "Add a plant to the library. Without --name an interactive form is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := app.Garden.State(ctx)
			if err != nil {
				return err
			}

			var plant domain.Plant
			if !cmd.Flags().Changed("name") {
				if !app.interactive() {
					return fmt.Errorf("--name is required when not running in a terminal")
				}
				values := newPlantFormValues()
				if err := newPlantForm(values, st.Plants).RunWithContext(ctx); err != nil {
					return err
				}
				plant = values.toPlant()
			} else {
				plant = domain.Plant{WaterNeed: domain.NeedMedium, SunNeed: domain.NeedMedium}
				if err := flags.apply(cmd.Flags(), &plant); err != nil {
					return err
				}
			}

			if err := plant.Validate(); err != nil {
				return err
			}
			if _, err := app.Garden.Dispatch(ctx, domain.AddPlant{Plant: plant}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s (%s)\n",
				formatter.PlantGlyph(plant), plant.Name, formatter.Plural(plant.GrowthDuration, "week", "weeks"))
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func newPlantListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the plant library",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Garden.State(cmd.Context())
			if err != nil {
				return err
			}
			if st.Plants.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The plant library is empty.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlantList(st.Plants.All()))
			return nil
		},
	}
}

func newPlantShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show one plant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Inspect.Plant(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlantDetail(d.Plant, d.Plantings))
			return nil
		},
	}
}

func newPlantUpdateCmd(app *App) *cobra.Command {
	var flags plantFlags

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Change fields of a plant",
		Long:  "Change fields of a plant. Only the flags given are changed; --name renames it.\nPlantings keep the old name and show up in 'garden check' after a rename.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := app.Garden.State(ctx)
			if err != nil {
				return err
			}
			plant, ok := st.Plants.Get(args[0])
			if !ok {
				return fmt.Errorf("plant %q: %w", args[0], domain.ErrNotFound)
			}
			if cmd.Flags().NFlag() == 0 {
				return errors.New("nothing to update; pass at least one field flag")
			}
			if err := flags.apply(cmd.Flags(), &plant); err != nil {
				return err
			}
			if err := plant.Validate(); err != nil {
				return err
			}
			if _, err := app.Garden.Dispatch(ctx, domain.UpdatePlant{OriginalName: args[0], Plant: plant}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", plant.Name)
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func newPlantRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a plant from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := app.Garden.State(ctx)
			if err != nil {
				return err
			}
			if !st.Plants.Has(args[0]) {
				return fmt.Errorf("plant %q: %w", args[0], domain.ErrNotFound)
			}
			next, err := app.Garden.Dispatch(ctx, domain.DeletePlant{PlantName: args[0]})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Removed %s\n", args[0])
			refs := 0
			for _, d := range next.DanglingPlantings() {
				if d.Planting.Plant == args[0] {
					refs++
				}
			}
			if refs > 0 {
				fmt.Fprintln(out, formatter.StyleYellow.Render(
					fmt.Sprintf("Warning: %s still %s it", formatter.Plural(refs, "planting", "plantings"), pluralVerb(refs, "uses", "use"))))
			}
			return nil
		},
	}
}

func pluralVerb(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
