package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/gardenplan/internal/cli/formatter"
	"github.com/alexanderramin/gardenplan/internal/importer"
	"github.com/alexanderramin/gardenplan/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var asCSV bool
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the garden as JSON or the plant library as CSV",
		Long:  "Export the garden as JSON, or with --csv only the plant library.\nUse -o - to write to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := output
			if path == "" {
				if asCSV {
					path = importer.PlantsCSVFileName
				} else {
					name, err := app.Export.DefaultFileName(ctx)
					if err != nil {
						return err
					}
					path = name
				}
			}

			write := app.Export.ExportJSON
			if asCSV {
				write = app.Export.ExportCSV
			}

			if path == "-" {
				return write(ctx, cmd.OutOrStdout())
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			if err := write(ctx, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "Export the plant library as CSV")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (- for stdout)")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "import PATH",
		Short: "Import a garden or plant list",
		Long: `Import a file. A JSON document with a "garden" key replaces the whole
garden, plant library and current week. A JSON document with only "plants",
or a .csv file, adds new plants to the library and skips names already there.
Use - to read from stdin (JSON unless --csv).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var (
				res *service.ImportResult
				err error
			)
			if args[0] == "-" {
				var in io.Reader = cmd.InOrStdin()
				if asCSV {
					res, err = app.Import.ImportCSV(ctx, in)
				} else {
					res, err = app.Import.ImportJSON(ctx, in)
				}
			} else {
				res, err = app.Import.ImportFile(ctx, args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatImportResult(res))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "Treat stdin as CSV")

	return cmd
}

func formatImportResult(res *service.ImportResult) string {
	var b strings.Builder
	if res.Kind == importer.FullGarden {
		fmt.Fprintf(&b, "Replaced garden: %s, %s\n",
			formatter.Plural(res.Beds, "bed", "beds"), formatter.Plural(res.Added, "plant", "plants"))
		return b.String()
	}
	fmt.Fprintf(&b, "Added %s\n", formatter.Plural(res.Added, "plant", "plants"))
	if len(res.Skipped) > 0 {
		fmt.Fprintf(&b, "Skipped %d already in the library: %s\n", len(res.Skipped), strings.Join(res.Skipped, ", "))
	}
	if res.Rejected > 0 {
		fmt.Fprintln(&b, formatter.StyleYellow.Render(
			fmt.Sprintf("Ignored %s without a name or icon", formatter.Plural(res.Rejected, "row", "rows"))))
	}
	return b.String()
}
