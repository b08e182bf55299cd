package service

import (
	"context"
	"io"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/alexanderramin/gardenplan/internal/importer"
)

// GardenService applies editing intents to the persisted garden. Every write
// loads the stored state, applies the change and saves it inside a single
// transaction.
type GardenService interface {
	State(ctx context.Context) (domain.GardenState, error)
	Dispatch(ctx context.Context, cmds ...domain.Command) (domain.GardenState, error)
	PlantAt(ctx context.Context, bedID, slotID, plantName string, week int) (domain.Planting, error)
	DropAt(ctx context.Context, x, y int, plantName string) (domain.Planting, error)
	RemoveAt(ctx context.Context, x, y int) (domain.Planting, error)
	Reset(ctx context.Context) error
}

type ImportService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportJSON(ctx context.Context, r io.Reader) (*ImportResult, error)
	ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error)
}

type ExportService interface {
	ExportJSON(ctx context.Context, w io.Writer) error
	ExportCSV(ctx context.Context, w io.Writer) error
	DefaultFileName(ctx context.Context) (string, error)
}

// InspectService reads single records straight from their tables without
// loading the whole garden.
type InspectService interface {
	Plant(ctx context.Context, name string) (*PlantDetail, error)
	Bed(ctx context.Context, id string) (domain.Bed, error)
}

type StatusService interface {
	Summary(ctx context.Context) (domain.Summary, error)
	Check(ctx context.Context) (*CheckReport, error)
}

// ImportResult describes what an import changed.
type ImportResult struct {
	Kind  importer.PayloadKind
	Added int
	// Skipped lists plant names that were already in the library.
	Skipped  []string
	Rejected int
	Beds     int
}

// PlantDetail is a library entry with the number of plantings that name it.
type PlantDetail struct {
	Plant     domain.Plant
	Plantings int
}

// CheckReport collects the consistency problems of a stored garden.
type CheckReport struct {
	Week        int
	Dangling    []domain.DanglingPlanting
	OutOfBounds []domain.Bed
	Conflicts   []domain.CompanionConflict
}

// OK reports whether the check found nothing.
func (r *CheckReport) OK() bool {
	return len(r.Dangling) == 0 && len(r.OutOfBounds) == 0 && len(r.Conflicts) == 0
}
