package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/gardenplan/internal/db"
	"github.com/alexanderramin/gardenplan/internal/domain"
)

// SQLiteStateRepo implements StateRepo by composing the table repositories
// over one connection. Save replaces every row, so callers run it inside a
// unit of work.
type SQLiteStateRepo struct {
	garden    *SQLiteGardenRepo
	plants    *SQLitePlantRepo
	beds      *SQLiteBedRepo
	slots     *SQLiteSlotRepo
	plantings *SQLitePlantingRepo
}

func NewSQLiteStateRepo(db db.DBTX) *SQLiteStateRepo {
	return &SQLiteStateRepo{
		garden:    NewSQLiteGardenRepo(db),
		plants:    NewSQLitePlantRepo(db),
		beds:      NewSQLiteBedRepo(db),
		slots:     NewSQLiteSlotRepo(db),
		plantings: NewSQLitePlantingRepo(db),
	}
}

// Load assembles the stored state. An empty database yields the default
// state.
func (r *SQLiteStateRepo) Load(ctx context.Context) (domain.GardenState, error) {
	rec, err := r.garden.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultState(), nil
	}
	if err != nil {
		return domain.GardenState{}, err
	}

	plants, err := r.plants.List(ctx)
	if err != nil {
		return domain.GardenState{}, err
	}
	beds, err := r.beds.List(ctx)
	if err != nil {
		return domain.GardenState{}, err
	}
	slots, err := r.slots.ListAll(ctx)
	if err != nil {
		return domain.GardenState{}, err
	}
	plantings, err := r.plantings.ListAll(ctx)
	if err != nil {
		return domain.GardenState{}, err
	}

	bySlot := make(map[string][]domain.Planting)
	for _, p := range plantings {
		bySlot[p.SlotID] = append(bySlot[p.SlotID], p.Planting)
	}
	byBed := make(map[string][]domain.Slot)
	for _, s := range slots {
		s.Slot.Plantings = bySlot[s.Slot.ID]
		byBed[s.BedID] = append(byBed[s.BedID], s.Slot)
	}
	for i := range beds {
		beds[i].Slots = byBed[beds[i].ID]
	}

	return domain.GardenState{
		Garden: domain.Garden{
			Name:     rec.Name,
			GridSize: rec.GridSize,
			Beds:     beds,
		},
		Plants:      domain.NewPlantLibrary(plants...),
		CurrentWeek: rec.CurrentWeek,
	}, nil
}

// Save overwrites the stored state with s.
func (r *SQLiteStateRepo) Save(ctx context.Context, s domain.GardenState) error {
	if err := r.garden.Upsert(ctx, GardenRecord{
		Name:        s.Garden.Name,
		GridSize:    s.Garden.GridSize,
		CurrentWeek: s.CurrentWeek,
	}); err != nil {
		return err
	}

	if err := r.plants.DeleteAll(ctx); err != nil {
		return err
	}
	for i, p := range s.Plants.All() {
		if err := r.plants.Create(ctx, p, i); err != nil {
			return fmt.Errorf("plant %q: %w", p.Name, err)
		}
	}

	if err := r.beds.DeleteAll(ctx); err != nil {
		return err
	}
	for bi, b := range s.Garden.Beds {
		if err := r.beds.Create(ctx, b, bi); err != nil {
			return fmt.Errorf("bed %s: %w", b.ID, err)
		}
		for si, sl := range b.Slots {
			if err := r.slots.Create(ctx, b.ID, sl, si); err != nil {
				return fmt.Errorf("slot %s: %w", sl.ID, err)
			}
			for pi, p := range sl.Plantings {
				if err := r.plantings.Create(ctx, sl.ID, p, pi); err != nil {
					return fmt.Errorf("slot %s planting %d: %w", sl.ID, pi, err)
				}
			}
		}
	}
	return nil
}
