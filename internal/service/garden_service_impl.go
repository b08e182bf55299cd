package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gardenplan/internal/db"
	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/alexanderramin/gardenplan/internal/repository"
)

type gardenService struct {
	states   repository.StateRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewGardenService(states repository.StateRepo, uow db.UnitOfWork, observers ...UseCaseObserver) GardenService {
	return &gardenService{
		states:   states,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *gardenService) State(ctx context.Context) (domain.GardenState, error) {
	st, err := s.states.Load(ctx)
	if err != nil {
		return domain.GardenState{}, fmt.Errorf("loading garden: %w", err)
	}
	return st, nil
}

func (s *gardenService) Dispatch(ctx context.Context, cmds ...domain.Command) (next domain.GardenState, err error) {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, domain.CommandName(c))
	}
	defer observe(ctx, s.observer, "dispatch", time.Now().UTC(), &err, map[string]any{
		"commands": strings.Join(names, ","),
	})

	err = s.update(ctx, func(st domain.GardenState) (domain.GardenState, error) {
		return domain.ApplyAll(st, cmds...)
	}, &next)
	return next, err
}

func (s *gardenService) PlantAt(ctx context.Context, bedID, slotID, plantName string, week int) (p domain.Planting, err error) {
	defer observe(ctx, s.observer, "plant_at", time.Now().UTC(), &err, map[string]any{
		"bed":   bedID,
		"slot":  slotID,
		"plant": plantName,
		"week":  week,
	})

	err = s.update(ctx, func(st domain.GardenState) (domain.GardenState, error) {
		next, planted, perr := plantIn(st, bedID, slotID, plantName, week)
		p = planted
		return next, perr
	}, nil)
	return p, err
}

func (s *gardenService) DropAt(ctx context.Context, x, y int, plantName string) (p domain.Planting, err error) {
	fields := map[string]any{"x": x, "y": y, "plant": plantName}
	defer observe(ctx, s.observer, "drop_at", time.Now().UTC(), &err, fields)

	err = s.update(ctx, func(st domain.GardenState) (domain.GardenState, error) {
		cs, ok := domain.CellOwnerSlot(x, y, st.Garden.Beds)
		if !ok {
			return st, fmt.Errorf("no slot at cell (%d,%d): %w", x, y, domain.ErrNotFound)
		}
		fields["slot"] = cs.Slot.ID
		next, planted, perr := plantIn(st, cs.Bed.ID, cs.Slot.ID, plantName, st.CurrentWeek)
		p = planted
		return next, perr
	}, nil)
	return p, err
}

func (s *gardenService) RemoveAt(ctx context.Context, x, y int) (p domain.Planting, err error) {
	defer observe(ctx, s.observer, "remove_at", time.Now().UTC(), &err, map[string]any{"x": x, "y": y})

	err = s.update(ctx, func(st domain.GardenState) (domain.GardenState, error) {
		cs, ok := domain.CellOwnerSlot(x, y, st.Garden.Beds)
		if !ok {
			return st, fmt.Errorf("no slot at cell (%d,%d): %w", x, y, domain.ErrNotFound)
		}
		active, ok := domain.ActivePlantingForWeek(cs.Slot.Plantings, st.CurrentWeek)
		if !ok {
			return st, fmt.Errorf("nothing planted at (%d,%d) in week %d: %w", x, y, st.CurrentWeek, domain.ErrNotFound)
		}
		p = active
		return st.RemovePlanting(cs.Bed.ID, cs.Slot.ID, active.StartWeek), nil
	}, nil)
	return p, err
}

func (s *gardenService) Reset(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "reset", time.Now().UTC(), &err, nil)

	return s.update(ctx, func(domain.GardenState) (domain.GardenState, error) {
		return domain.DefaultState(), nil
	}, nil)
}

// update runs load, change and save in one transaction. When out is non-nil
// it receives the saved state.
func (s *gardenService) update(ctx context.Context, change func(domain.GardenState) (domain.GardenState, error), out *domain.GardenState) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStates := repository.NewSQLiteStateRepo(tx)

		st, err := txStates.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading garden: %w", err)
		}
		next, err := change(st)
		if err != nil {
			return err
		}
		if err := txStates.Save(ctx, next); err != nil {
			return fmt.Errorf("saving garden: %w", err)
		}
		if out != nil {
			*out = next
		}
		return nil
	})
}

// plantIn places plantName in a slot starting at week, using the plant's
// growth duration for the end week.
func plantIn(st domain.GardenState, bedID, slotID, plantName string, week int) (domain.GardenState, domain.Planting, error) {
	plant, ok := st.Plants.Get(plantName)
	if !ok {
		return st, domain.Planting{}, fmt.Errorf("plant %q: %w", plantName, domain.ErrNotFound)
	}
	p, err := domain.ComputePlantingPeriod(week, plant)
	if err != nil {
		return st, domain.Planting{}, err
	}
	next, err := st.AddPlanting(bedID, slotID, p)
	if err != nil {
		return st, domain.Planting{}, err
	}
	return next, p, nil
}
