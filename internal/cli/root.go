package cli

import (
	"github.com/alexanderramin/gardenplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Garden  service.GardenService
	Import  service.ImportService
	Export  service.ExportService
	Status  service.StatusService
	Inspect service.InspectService

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// viewer refuse to start without one. Nil means not interactive.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "gardenplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gardenplan",
		Short: "Plan garden beds, slots and planting weeks",
		// main prints the error once.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		newGardenCmd(app),
		newBedCmd(app),
		newSlotCmd(app),
		newPlantCmd(app),
		newPlantingCmd(app),
		newWeekCmd(app),
		newTimelineCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newStatusCmd(app),
		newViewCmd(app),
	)

	return root
}
