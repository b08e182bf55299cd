package domain

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/google/uuid"
)

// Slot is a sub-rectangle of a bed. Its position is absolute on the garden
// grid and its plantings never overlap in time.
type Slot struct {
	ID        string
	Number    string
	Position  Position
	Size      Size
	Plantings []Planting
}

func (s Slot) Rect() Rect {
	return Rect{X: s.Position.X, Y: s.Position.Y, Width: s.Size.Width, Height: s.Size.Height}
}

func (s Slot) Clone() Slot {
	s.Plantings = slices.Clone(s.Plantings)
	return s
}

// Bed is a named rectangular region of the garden grid.
type Bed struct {
	ID       string
	Name     string
	Position Position
	Size     Size
	Slots    []Slot
}

func (b Bed) Rect() Rect {
	return Rect{X: b.Position.X, Y: b.Position.Y, Width: b.Size.Width, Height: b.Size.Height}
}

func (b Bed) Clone() Bed {
	if b.Slots != nil {
		slots := make([]Slot, len(b.Slots))
		for i, s := range b.Slots {
			slots[i] = s.Clone()
		}
		b.Slots = slots
	}
	return b
}

// FindSlot returns the slot with id inside this bed.
func (b Bed) FindSlot(id string) (Slot, bool) {
	for _, s := range b.Slots {
		if s.ID == id {
			return s.Clone(), true
		}
	}
	return Slot{}, false
}

// NextSlotNumber is the default label for the next slot added to b.
func (b Bed) NextSlotNumber() string {
	return strconv.Itoa(len(b.Slots) + 1)
}

type GridSize struct {
	Width  int
	Height int
}

// Validate checks both dimensions against the grid bounds.
func (g GridSize) Validate() error {
	if g.Width < MinGridSize || g.Width > MaxGridSize {
		return fmt.Errorf("grid width %d must be between %d and %d: %w", g.Width, MinGridSize, MaxGridSize, ErrRange)
	}
	if g.Height < MinGridSize || g.Height > MaxGridSize {
		return fmt.Errorf("grid height %d must be between %d and %d: %w", g.Height, MinGridSize, MaxGridSize, ErrRange)
	}
	return nil
}

type Garden struct {
	Name     string
	GridSize GridSize
	Beds     []Bed
}

func (g Garden) Clone() Garden {
	if g.Beds != nil {
		beds := make([]Bed, len(g.Beds))
		for i, b := range g.Beds {
			beds[i] = b.Clone()
		}
		g.Beds = beds
	}
	return g
}

// FindBed returns the bed with id.
func (g Garden) FindBed(id string) (Bed, bool) {
	i := g.bedIndex(id)
	if i < 0 {
		return Bed{}, false
	}
	return g.Beds[i].Clone(), true
}

// NextBedName is the default name for the next bed added to g.
func (g Garden) NextBedName() string {
	return fmt.Sprintf("Bed %d", len(g.Beds)+1)
}

func (g Garden) bedIndex(id string) int {
	return slices.IndexFunc(g.Beds, func(b Bed) bool { return b.ID == id })
}

func (g Garden) hasSlotID(id string) bool {
	for _, b := range g.Beds {
		for _, s := range b.Slots {
			if s.ID == id {
				return true
			}
		}
	}
	return false
}

// GardenState is the single source of truth. Values are never mutated in
// place: every operation returns a fresh state.
type GardenState struct {
	Garden      Garden
	Plants      PlantLibrary
	CurrentWeek int
}

func (s GardenState) Clone() GardenState {
	return GardenState{
		Garden:      s.Garden.Clone(),
		Plants:      s.Plants.Clone(),
		CurrentWeek: s.CurrentWeek,
	}
}

// NewBedID returns a fresh opaque bed identifier.
func NewBedID() string { return "bed-" + uuid.NewString() }

// NewSlotID returns a fresh opaque slot identifier.
func NewSlotID() string { return "slot-" + uuid.NewString() }

// NewBed builds a bed covering rect with a generated id.
func NewBed(name string, rect Rect) Bed {
	return Bed{ID: NewBedID(), Name: name, Position: rect.Position(), Size: rect.Size()}
}

// NewSlot builds an empty slot covering rect with a generated id.
func NewSlot(number string, rect Rect) Slot {
	return Slot{ID: NewSlotID(), Number: number, Position: rect.Position(), Size: rect.Size()}
}

// DefaultState is the state a fresh planner starts from.
func DefaultState() GardenState {
	return GardenState{
		Garden: Garden{
			Name:     "My Garden",
			GridSize: GridSize{Width: 10, Height: 8},
		},
		Plants:      NewPlantLibrary(DefaultPlants()...),
		CurrentWeek: 1,
	}
}

// DefaultPlants is the seed plant library.
func DefaultPlants() []Plant {
	return []Plant{
		{
			Name:               "carrot",
			Image:              "🥕",
			PlantingMonths:     []int{3, 4, 5},
			HarvestMonths:      []int{6, 7, 8},
			WaterNeed:          NeedMedium,
			SunNeed:            NeedHigh,
			IncompatiblePlants: []string{"fennel"},
			CompanionPlants:    []string{"lettuce"},
			GrowthDuration:     10,
			SpacingCm:          5,
			PlantFamily:        "Apiaceae",
			Season:             SeasonSpring,
			SuccessionInterval: 2,
		},
		{
			Name:               "lettuce",
			Image:              "🥬",
			PlantingMonths:     []int{3, 4, 8, 9},
			HarvestMonths:      []int{5, 6, 10, 11},
			WaterNeed:          NeedMedium,
			SunNeed:            NeedMedium,
			IncompatiblePlants: []string{},
			CompanionPlants:    []string{"carrot", "radish"},
			GrowthDuration:     8,
			SpacingCm:          10,
			PlantFamily:        "Asteraceae",
			Season:             SeasonSpring,
			SuccessionInterval: 3,
		},
	}
}
