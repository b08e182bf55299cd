package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/google/uuid"
)

var testBedCounter atomic.Int64

// Bed options
type BedOption func(*domain.Bed)

func WithBedRect(x, y, w, h int) BedOption {
	return func(b *domain.Bed) {
		b.Position = domain.Position{X: x, Y: y}
		b.Size = domain.Size{Width: w, Height: h}
	}
}

func WithBedID(id string) BedOption {
	return func(b *domain.Bed) {
		b.ID = id
	}
}

// WithSlots appends slots to the bed in order.
func WithSlots(slots ...domain.Slot) BedOption {
	return func(b *domain.Bed) {
		b.Slots = append(b.Slots, slots...)
	}
}

// NewTestBed returns a 4x2 bed at the origin with a fresh id.
func NewTestBed(name string, opts ...BedOption) domain.Bed {
	if name == "" {
		name = fmt.Sprintf("Bed %d", testBedCounter.Add(1))
	}
	b := domain.Bed{
		ID:       "bed-" + uuid.New().String(),
		Name:     name,
		Position: domain.Position{X: 0, Y: 0},
		Size:     domain.Size{Width: 4, Height: 2},
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Slot options
type SlotOption func(*domain.Slot)

func WithSlotRect(x, y, w, h int) SlotOption {
	return func(s *domain.Slot) {
		s.Position = domain.Position{X: x, Y: y}
		s.Size = domain.Size{Width: w, Height: h}
	}
}

func WithSlotID(id string) SlotOption {
	return func(s *domain.Slot) {
		s.ID = id
	}
}

// WithPlanting appends a planting of plant covering [start, end].
func WithPlanting(plant string, start, end int) SlotOption {
	return func(s *domain.Slot) {
		s.Plantings = append(s.Plantings, domain.Planting{Plant: plant, StartWeek: start, EndWeek: end})
	}
}

// NewTestSlot returns a 1x1 slot at the origin with a fresh id.
func NewTestSlot(number string, opts ...SlotOption) domain.Slot {
	s := domain.Slot{
		ID:       "slot-" + uuid.New().String(),
		Number:   number,
		Position: domain.Position{X: 0, Y: 0},
		Size:     domain.Size{Width: 1, Height: 1},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Plant options
type PlantOption func(*domain.Plant)

func WithGrowthDuration(weeks int) PlantOption {
	return func(p *domain.Plant) {
		p.GrowthDuration = weeks
	}
}

func WithIncompatible(names ...string) PlantOption {
	return func(p *domain.Plant) {
		p.IncompatiblePlants = names
	}
}

func WithSeason(s domain.Season) PlantOption {
	return func(p *domain.Plant) {
		p.Season = s
	}
}

// NewTestPlant returns a valid plant record that grows for six weeks.
func NewTestPlant(name string, opts ...PlantOption) domain.Plant {
	p := domain.Plant{
		Name:               name,
		Image:              "🌱",
		PlantingMonths:     []int{4, 5},
		HarvestMonths:      []int{6, 7},
		WaterNeed:          domain.NeedMedium,
		SunNeed:            domain.NeedMedium,
		IncompatiblePlants: []string{},
		CompanionPlants:    []string{},
		GrowthDuration:     6,
		SpacingCm:          10,
		PlantFamily:        "Testaceae",
		Season:             domain.SeasonSpring,
		SuccessionInterval: 2,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestState returns the default state with the given beds appended.
func NewTestState(beds ...domain.Bed) domain.GardenState {
	s := domain.DefaultState()
	for _, b := range beds {
		next, err := s.AddBed(b)
		if err != nil {
			panic(fmt.Sprintf("testutil: adding bed %s: %v", b.ID, err))
		}
		s = next
	}
	return s
}
