package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/gardenplan/internal/domain"
)

// GardenRecord is the single garden row: everything about the garden that is
// not a bed or a plant.
type GardenRecord struct {
	Name        string
	GridSize    domain.GridSize
	CurrentWeek int
	UpdatedAt   time.Time
}

// SlotRecord is a slot together with the bed that owns it.
type SlotRecord struct {
	BedID string
	Slot  domain.Slot
}

// PlantingRecord is a planting together with the slot that holds it.
type PlantingRecord struct {
	SlotID   string
	Planting domain.Planting
}

type GardenRepo interface {
	Get(ctx context.Context) (*GardenRecord, error)
	Upsert(ctx context.Context, g GardenRecord) error
}

type PlantRepo interface {
	Create(ctx context.Context, p domain.Plant, seq int) error
	GetByName(ctx context.Context, name string) (domain.Plant, error)
	List(ctx context.Context) ([]domain.Plant, error)
	DeleteAll(ctx context.Context) error
}

type BedRepo interface {
	Create(ctx context.Context, b domain.Bed, seq int) error
	GetByID(ctx context.Context, id string) (domain.Bed, error)
	List(ctx context.Context) ([]domain.Bed, error)
	DeleteAll(ctx context.Context) error
}

type SlotRepo interface {
	Create(ctx context.Context, bedID string, s domain.Slot, seq int) error
	ListByBed(ctx context.Context, bedID string) ([]domain.Slot, error)
	ListAll(ctx context.Context) ([]SlotRecord, error)
}

type PlantingRepo interface {
	Create(ctx context.Context, slotID string, p domain.Planting, seq int) error
	ListBySlot(ctx context.Context, slotID string) ([]domain.Planting, error)
	ListAll(ctx context.Context) ([]PlantingRecord, error)
	CountByPlant(ctx context.Context, plant string) (int, error)
}

// StateRepo persists the whole garden aggregate as one snapshot.
type StateRepo interface {
	Load(ctx context.Context) (domain.GardenState, error)
	Save(ctx context.Context, s domain.GardenState) error
}
