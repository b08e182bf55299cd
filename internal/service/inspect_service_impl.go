package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/alexanderramin/gardenplan/internal/repository"
)

type inspectService struct {
	garden    repository.GardenRepo
	plants    repository.PlantRepo
	beds      repository.BedRepo
	slots     repository.SlotRepo
	plantings repository.PlantingRepo
	observer  UseCaseObserver
}

func NewInspectService(
	garden repository.GardenRepo,
	plants repository.PlantRepo,
	beds repository.BedRepo,
	slots repository.SlotRepo,
	plantings repository.PlantingRepo,
	observers ...UseCaseObserver,
) InspectService {
	return &inspectService{
		garden:    garden,
		plants:    plants,
		beds:      beds,
		slots:     slots,
		plantings: plantings,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *inspectService) Plant(ctx context.Context, name string) (d *PlantDetail, err error) {
	defer observe(ctx, s.observer, "inspect_plant", time.Now().UTC(), &err, map[string]any{"plant": name})

	p, err := s.plants.GetByName(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		p, err = s.defaultPlant(ctx, name, err)
	}
	if err != nil {
		return nil, err
	}
	n, err := s.plantings.CountByPlant(ctx, name)
	if err != nil {
		return nil, err
	}
	return &PlantDetail{Plant: p, Plantings: n}, nil
}

// Bed returns the bed with its slots and their plantings in stored order.
func (s *inspectService) Bed(ctx context.Context, id string) (b domain.Bed, err error) {
	defer observe(ctx, s.observer, "inspect_bed", time.Now().UTC(), &err, map[string]any{"bed": id})

	b, err = s.beds.GetByID(ctx, id)
	if err != nil {
		return domain.Bed{}, err
	}
	b.Slots, err = s.slots.ListByBed(ctx, id)
	if err != nil {
		return domain.Bed{}, err
	}
	for i := range b.Slots {
		b.Slots[i].Plantings, err = s.plantings.ListBySlot(ctx, b.Slots[i].ID)
		if err != nil {
			return domain.Bed{}, err
		}
	}
	return b, nil
}

// defaultPlant serves the seed library while nothing has been saved yet.
func (s *inspectService) defaultPlant(ctx context.Context, name string, notFound error) (domain.Plant, error) {
	if _, err := s.garden.Get(ctx); !errors.Is(err, domain.ErrNotFound) {
		if err != nil {
			return domain.Plant{}, err
		}
		return domain.Plant{}, notFound
	}
	if p, ok := domain.DefaultState().Plants.Get(name); ok {
		return p, nil
	}
	return domain.Plant{}, notFound
}
