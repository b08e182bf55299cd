package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/gardenplan/internal/cli"
	"github.com/alexanderramin/gardenplan/internal/config"
	"github.com/alexanderramin/gardenplan/internal/db"
	"github.com/alexanderramin/gardenplan/internal/repository"
	"github.com/alexanderramin/gardenplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	states := repository.NewSQLiteStateRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case logging goes to stderr so exports to stdout stay clean.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		level, err := cfg.SlogLevel()
		if err != nil {
			return err
		}
		observer = service.NewLogUseCaseObserver(os.Stderr, level)
	}

	app := &cli.App{
		Garden:  service.NewGardenService(states, uow, observer),
		Import:  service.NewImportService(uow, observer),
		Export:  service.NewExportService(states, observer),
		Status:  service.NewStatusService(states),
		Inspect: service.NewInspectService(
			repository.NewSQLiteGardenRepo(database),
			repository.NewSQLitePlantRepo(database),
			repository.NewSQLiteBedRepo(database),
			repository.NewSQLiteSlotRepo(database),
			repository.NewSQLitePlantingRepo(database),
			observer,
		),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
