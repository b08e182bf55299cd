package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRectangle(t *testing.T) {
	cases := []struct {
		name       string
		start, end Position
		want       Rect
	}{
		{"reversed corners", Position{3, 5}, Position{1, 2}, Rect{X: 1, Y: 2, Width: 3, Height: 4}},
		{"forward corners", Position{1, 2}, Position{3, 5}, Rect{X: 1, Y: 2, Width: 3, Height: 4}},
		{"single cell", Position{4, 4}, Position{4, 4}, Rect{X: 4, Y: 4, Width: 1, Height: 1}},
		{"mixed diagonal", Position{0, 6}, Position{2, 1}, Rect{X: 0, Y: 1, Width: 3, Height: 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeRectangle(tc.start, tc.end))
		})
	}
}

func TestRectContains_HalfOpen(t *testing.T) {
	r := Rect{X: 1, Y: 1, Width: 2, Height: 3}
	assert.True(t, r.Contains(1, 1))
	assert.True(t, r.Contains(2, 3))
	assert.False(t, r.Contains(3, 1), "right edge is exclusive")
	assert.False(t, r.Contains(1, 4), "bottom edge is exclusive")
	assert.False(t, r.Contains(0, 1))
}

func TestCellOwnerBed_FirstInListOrderWins(t *testing.T) {
	beds := []Bed{
		{ID: "b1", Position: Position{0, 0}, Size: Size{4, 4}},
		{ID: "b2", Position: Position{2, 2}, Size: Size{4, 4}},
	}

	got, ok := CellOwnerBed(3, 3, beds)
	require.True(t, ok)
	assert.Equal(t, "b1", got.ID)

	got, ok = CellOwnerBed(5, 5, beds)
	require.True(t, ok)
	assert.Equal(t, "b2", got.ID)

	_, ok = CellOwnerBed(9, 0, beds)
	assert.False(t, ok)
}

func TestCellOwnerSlot_ReturnsSlotAndBed(t *testing.T) {
	beds := []Bed{
		{ID: "b1", Position: Position{0, 0}, Size: Size{2, 2}},
		{ID: "b2", Position: Position{3, 0}, Size: Size{3, 3}, Slots: []Slot{
			{ID: "s1", Number: "1", Position: Position{3, 0}, Size: Size{1, 3}},
			{ID: "s2", Number: "2", Position: Position{4, 0}, Size: Size{2, 3}},
		}},
	}

	got, ok := CellOwnerSlot(5, 2, beds)
	require.True(t, ok)
	assert.Equal(t, "b2", got.Bed.ID)
	assert.Equal(t, "s2", got.Slot.ID)

	_, ok = CellOwnerSlot(0, 0, beds)
	assert.False(t, ok, "bed without slots owns no slot cells")
}

func TestCellBorder(t *testing.T) {
	grid := GridSize{Width: 6, Height: 4}
	beds := []Bed{
		{ID: "b1", Position: Position{1, 1}, Size: Size{3, 2}, Slots: []Slot{
			{ID: "s1", Position: Position{1, 1}, Size: Size{1, 2}},
		}},
	}

	// Slot cell next to another cell of the same bed but outside the slot.
	assert.Equal(t, BorderSlot, CellBorder(1, 1, EdgeRight, beds, grid))
	// Interior slot edge.
	assert.Equal(t, BorderNone, CellBorder(1, 1, EdgeBottom, beds, grid))
	// Bed cell on the outer edge.
	assert.Equal(t, BorderBed, CellBorder(3, 1, EdgeRight, beds, grid))
	// Bed interior.
	assert.Equal(t, BorderNone, CellBorder(2, 1, EdgeRight, beds, grid))
	// Empty cell never has a border.
	assert.Equal(t, BorderNone, CellBorder(5, 3, EdgeTop, beds, grid))
}

func TestCellBorder_GridEdgeIsBoundary(t *testing.T) {
	grid := GridSize{Width: 3, Height: 3}
	beds := []Bed{{ID: "b1", Position: Position{0, 0}, Size: Size{3, 3}}}

	assert.Equal(t, BorderBed, CellBorder(0, 0, EdgeLeft, beds, grid))
	assert.Equal(t, BorderBed, CellBorder(0, 0, EdgeTop, beds, grid))
	assert.Equal(t, BorderBed, CellBorder(2, 2, EdgeBottom, beds, grid))
	assert.Equal(t, BorderNone, CellBorder(1, 1, EdgeLeft, beds, grid))
}

// TestCellOwnerBed_Property checks that whenever any bed contains a cell the
// reported owner is the first such bed.
func TestCellOwnerBed_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(5) + 1
		beds := make([]Bed, n)
		for i := range beds {
			beds[i] = Bed{
				ID:       string(rune('a' + i)),
				Position: Position{rng.Intn(8), rng.Intn(8)},
				Size:     Size{rng.Intn(4) + 1, rng.Intn(4) + 1},
			}
		}
		x, y := rng.Intn(12), rng.Intn(12)

		wantIdx := -1
		for i, b := range beds {
			if b.Rect().Contains(x, y) {
				wantIdx = i
				break
			}
		}

		got, ok := CellOwnerBed(x, y, beds)
		if wantIdx < 0 {
			assert.False(t, ok, "trial %d: no bed contains (%d,%d)", trial, x, y)
			continue
		}
		require.True(t, ok, "trial %d", trial)
		assert.Equal(t, beds[wantIdx].ID, got.ID, "trial %d: first containing bed must win", trial)
	}
}
