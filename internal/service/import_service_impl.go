package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/gardenplan/internal/db"
	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/alexanderramin/gardenplan/internal/importer"
	"github.com/alexanderramin/gardenplan/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	payload, err := importer.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importPayload(ctx, payload)
}

func (s *importService) ImportJSON(ctx context.Context, r io.Reader) (*ImportResult, error) {
	payload, err := importer.ParseJSON(r)
	if err != nil {
		return nil, err
	}
	return s.importPayload(ctx, payload)
}

func (s *importService) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	payload, err := importer.DecodeCSV(r)
	if err != nil {
		return nil, err
	}
	return s.importPayload(ctx, payload)
}

func (s *importService) importPayload(ctx context.Context, payload *importer.Payload) (result *ImportResult, err error) {
	fields := map[string]any{"kind": payload.Kind.String()}
	defer observe(ctx, s.observer, "import", time.Now().UTC(), &err, fields)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStates := repository.NewSQLiteStateRepo(tx)

		st, err := txStates.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading garden: %w", err)
		}

		var cmds []domain.Command
		res := &ImportResult{Kind: payload.Kind, Rejected: payload.Rejected}
		switch payload.Kind {
		case importer.FullGarden:
			cmds, res.Added = replaceCommands(st, payload)
			res.Beds = len(payload.Garden.Beds)
		case importer.PlantsOnly:
			cmds, res.Skipped = appendCommands(st, payload.Plants)
			res.Added = len(cmds)
		default:
			return fmt.Errorf("unknown import kind %d: %w", payload.Kind, domain.ErrFormat)
		}

		next, err := domain.ApplyAll(st, cmds...)
		if err != nil {
			return fmt.Errorf("applying import: %w", err)
		}
		if err := txStates.Save(ctx, next); err != nil {
			return fmt.Errorf("saving garden: %w", err)
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["added"] = result.Added
	fields["skipped"] = len(result.Skipped)
	fields["rejected"] = result.Rejected
	return result, nil
}

// replaceCommands swaps the layout, the library and the week for the
// payload's. A zero week in the payload keeps the current one.
func replaceCommands(st domain.GardenState, payload *importer.Payload) ([]domain.Command, int) {
	cmds := []domain.Command{domain.UpdateGarden{Garden: payload.Garden}}
	for _, name := range st.Plants.Names() {
		cmds = append(cmds, domain.DeletePlant{PlantName: name})
	}
	for _, p := range payload.Plants {
		cmds = append(cmds, domain.AddPlant{Plant: p})
	}
	if payload.CurrentWeek > 0 {
		cmds = append(cmds, domain.SetCurrentWeek{Week: payload.CurrentWeek})
	}
	return cmds, len(payload.Plants)
}

// appendCommands adds plants the library does not have yet. Names already
// present, or repeated within the payload, are returned as skipped.
func appendCommands(st domain.GardenState, plants []domain.Plant) ([]domain.Command, []string) {
	var cmds []domain.Command
	var skipped []string
	seen := make(map[string]bool, len(plants))
	for _, p := range plants {
		if st.Plants.Has(p.Name) || seen[p.Name] {
			skipped = append(skipped, p.Name)
			continue
		}
		seen[p.Name] = true
		cmds = append(cmds, domain.AddPlant{Plant: p})
	}
	return cmds, skipped
}
