package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/gardenplan/internal/importer"
	"github.com/alexanderramin/gardenplan/internal/repository"
)

type exportService struct {
	states   repository.StateRepo
	observer UseCaseObserver
}

func NewExportService(states repository.StateRepo, observers ...UseCaseObserver) ExportService {
	return &exportService{
		states:   states,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *exportService) ExportJSON(ctx context.Context, w io.Writer) (err error) {
	defer observe(ctx, s.observer, "export_json", time.Now().UTC(), &err, nil)

	st, err := s.states.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading garden: %w", err)
	}
	return importer.EncodeJSON(w, st)
}

func (s *exportService) ExportCSV(ctx context.Context, w io.Writer) (err error) {
	defer observe(ctx, s.observer, "export_csv", time.Now().UTC(), &err, nil)

	st, err := s.states.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading garden: %w", err)
	}
	return importer.EncodeCSV(w, st.Plants.All())
}

func (s *exportService) DefaultFileName(ctx context.Context) (string, error) {
	st, err := s.states.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("loading garden: %w", err)
	}
	return importer.ExportFileName(st.Garden.Name), nil
}
