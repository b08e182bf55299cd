package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextNames(t *testing.T) {
	s := stateWithSlot(t)
	assert.Equal(t, "Bed 2", s.Garden.NextBedName())
	bed, _ := s.Garden.FindBed("b1")
	assert.Equal(t, "2", bed.NextSlotNumber())
	assert.Equal(t, "Bed 1", DefaultState().Garden.NextBedName())
}

func TestNewIDs(t *testing.T) {
	b := NewBed("North", NormalizeRectangle(Position{2, 2}, Position{0, 0}))
	assert.Regexp(t, `^bed-[0-9a-f-]{36}$`, b.ID)
	assert.Equal(t, Position{0, 0}, b.Position)
	assert.Equal(t, Size{3, 3}, b.Size)

	sl := NewSlot("1", Rect{X: 1, Y: 1, Width: 1, Height: 1})
	assert.Regexp(t, `^slot-[0-9a-f-]{36}$`, sl.ID)
	assert.NotEqual(t, NewSlotID(), NewSlotID())
}

func TestPlantAtCell(t *testing.T) {
	s := stateWithSlot(t, Planting{Plant: "carrot", StartWeek: 3, EndWeek: 12})

	got, ok := s.PlantAtCell(1, 1, 5)
	require.True(t, ok)
	assert.Equal(t, "s1", got.Slot.Slot.ID)
	assert.Equal(t, "North #1", got.Slot.Label())
	assert.True(t, got.Resolved)
	assert.Equal(t, "🥕", got.Plant.Image)

	_, ok = s.PlantAtCell(1, 1, 13)
	assert.False(t, ok, "no planting active that week")
	_, ok = s.PlantAtCell(3, 1, 5)
	assert.False(t, ok, "bed cell outside any slot")

	got, ok = s.DeletePlant("carrot").PlantAtCell(0, 0, 5)
	require.True(t, ok)
	assert.False(t, got.Resolved)
}

func TestSummary(t *testing.T) {
	s := stateWithSlot(t,
		Planting{Plant: "carrot", StartWeek: 1, EndWeek: 5},
		Planting{Plant: "lettuce", StartWeek: 6, EndWeek: 13},
	)
	assert.Equal(t, Summary{
		GardenName:  "My Garden",
		GridSize:    GridSize{10, 8},
		Beds:        1,
		Slots:       1,
		Plantings:   2,
		Plants:      2,
		CurrentWeek: 1,
	}, s.Summary())
}

func TestSlotRefs_InBedOrder(t *testing.T) {
	s := stateWithSlot(t)
	s, err := s.AddBed(Bed{ID: "b2", Name: "South", Size: Size{1, 1}, Slots: []Slot{{ID: "s9", Number: "1", Size: Size{1, 1}}}})
	require.NoError(t, err)

	refs := s.Garden.SlotRefs()
	require.Len(t, refs, 2)
	assert.Equal(t, "s1", refs[0].Slot.ID)
	assert.Equal(t, "South #1", refs[1].Label())
}

func TestCompanionConflicts(t *testing.T) {
	s := stateWithSlot(t, Planting{Plant: "carrot", StartWeek: 1, EndWeek: 10})
	s, err := s.AddPlant(Plant{Name: "fennel", Image: "🌿", GrowthDuration: 12})
	require.NoError(t, err)
	s, err = s.AddSlot("b1", Slot{ID: "s2", Number: "2", Position: Position{2, 0}, Size: Size{2, 2},
		Plantings: []Planting{{Plant: "fennel", StartWeek: 4, EndWeek: 15}}})
	require.NoError(t, err)

	got := s.CompanionConflicts(5)
	require.Len(t, got, 1)
	assert.Equal(t, CompanionConflict{BedName: "North", A: "carrot", B: "fennel"}, got[0])

	assert.Empty(t, s.CompanionConflicts(12), "carrot is harvested by week 12")
}
