package domain

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePlantingPeriod(t *testing.T) {
	carrot := Plant{Name: "carrot", GrowthDuration: 10}

	p, err := ComputePlantingPeriod(1, carrot)
	require.NoError(t, err)
	assert.Equal(t, Planting{Plant: "carrot", StartWeek: 1, EndWeek: 10}, p)
	assert.Equal(t, 10, p.Weeks())

	p, err = ComputePlantingPeriod(48, carrot)
	require.NoError(t, err)
	assert.Equal(t, 48, p.StartWeek)
	assert.Equal(t, 52, p.EndWeek, "end week is clamped to the year")
}

func TestComputePlantingPeriod_Rejects(t *testing.T) {
	_, err := ComputePlantingPeriod(0, Plant{Name: "x", GrowthDuration: 3})
	assert.ErrorIs(t, err, ErrRange)

	_, err = ComputePlantingPeriod(53, Plant{Name: "x", GrowthDuration: 3})
	assert.ErrorIs(t, err, ErrRange)

	_, err = ComputePlantingPeriod(5, Plant{Name: "x", GrowthDuration: 0})
	assert.ErrorIs(t, err, ErrRange)
}

func TestOverlaps_SharedBoundaryCounts(t *testing.T) {
	a := Planting{Plant: "carrot", StartWeek: 5, EndWeek: 10}

	conflict, ok := Overlaps([]Planting{a}, 10, 14)
	assert.True(t, ok)
	assert.Equal(t, a, conflict)

	_, ok = Overlaps([]Planting{a}, 11, 14)
	assert.False(t, ok)

	_, ok = Overlaps([]Planting{a}, 1, 4)
	assert.False(t, ok)

	_, ok = Overlaps([]Planting{a}, 1, 20)
	assert.True(t, ok, "candidate enclosing an existing planting overlaps")

	_, ok = Overlaps(nil, 1, 52)
	assert.False(t, ok)
}

// TestOverlaps_Property checks that the intersection test agrees with the
// three-clause containment formulation for any valid pair of ranges.
func TestOverlaps_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	in := func(w, s, e int) bool { return w >= s && w <= e }

	for trial := 0; trial < 200; trial++ {
		ps := rng.Intn(MaxWeek) + 1
		pe := ps + rng.Intn(MaxWeek-ps+1)
		s := rng.Intn(MaxWeek) + 1
		e := s + rng.Intn(MaxWeek-s+1)
		existing := Planting{Plant: "p", StartWeek: ps, EndWeek: pe}

		want := in(s, ps, pe) || in(e, ps, pe) || (in(ps, s, e) && in(pe, s, e))
		_, got := Overlaps([]Planting{existing}, s, e)
		assert.Equal(t, want, got, "trial %d: [%d,%d] vs [%d,%d]", trial, s, e, ps, pe)
	}
}

func TestActivePlantingForWeek(t *testing.T) {
	plantings := []Planting{
		{Plant: "carrot", StartWeek: 1, EndWeek: 5},
		{Plant: "lettuce", StartWeek: 8, EndWeek: 12},
	}

	got, ok := ActivePlantingForWeek(plantings, 5)
	require.True(t, ok)
	assert.Equal(t, "carrot", got.Plant)

	got, ok = ActivePlantingForWeek(plantings, 8)
	require.True(t, ok)
	assert.Equal(t, "lettuce", got.Plant)

	_, ok = ActivePlantingForWeek(plantings, 6)
	assert.False(t, ok)
}

func TestActivePlantingForWeek_FirstMatchWins(t *testing.T) {
	plantings := []Planting{
		{Plant: "first", StartWeek: 1, EndWeek: 10},
		{Plant: "second", StartWeek: 5, EndWeek: 6},
	}
	got, ok := ActivePlantingForWeek(plantings, 5)
	require.True(t, ok)
	assert.Equal(t, "first", got.Plant)
}

func TestValidateWeek(t *testing.T) {
	assert.NoError(t, ValidateWeek(1))
	assert.NoError(t, ValidateWeek(52))
	assert.ErrorIs(t, ValidateWeek(0), ErrRange)
	assert.ErrorIs(t, ValidateWeek(53), ErrRange)
}

func TestFormatWeekRange(t *testing.T) {
	assert.Equal(t, "W3-W12", FormatWeekRange(3, 12))
	assert.Equal(t, "W7", FormatWeekRange(7, 7))
}

func TestOverlapError_UnwrapsToKind(t *testing.T) {
	var err error = &OverlapError{SlotID: "s1", StartWeek: 5, EndWeek: 6, Conflict: Planting{Plant: "carrot", StartWeek: 1, EndWeek: 5}}
	assert.ErrorIs(t, err, ErrOverlap)

	var oe *OverlapError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, "carrot", oe.Conflict.Plant)
	assert.Contains(t, err.Error(), "W1-W5")
}
