package cli

import (
	"testing"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/alexanderramin/gardenplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFixture() domain.Garden {
	return testutil.NewTestState(
		testutil.NewTestBed("North", testutil.WithBedID("bed-6f1c2a9d-1111"), testutil.WithSlots(
			testutil.NewTestSlot("1", testutil.WithSlotID("slot-aaaa1111")),
			testutil.NewTestSlot("2", testutil.WithSlotID("slot-bbbb2222")),
		)),
		testutil.NewTestBed("South", testutil.WithBedID("bed-7a00ffee-2222")),
		testutil.NewTestBed("Herbs", testutil.WithBedID("bed-7a01ffee-3333")),
	).Garden
}

func TestResolveBed(t *testing.T) {
	g := resolveFixture()

	tests := []struct {
		input string
		want  string
	}{
		{"bed-6f1c2a9d-1111", "North"},
		{"north", "North"},
		{"SOUTH", "South"},
		{"6f1c", "North"},
		{"bed-7a01", "Herbs"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, err := resolveBed(g, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Name)
		})
	}
}

func TestResolveBed_Errors(t *testing.T) {
	g := resolveFixture()

	_, err := resolveBed(g, "west")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = resolveBed(g, "7a0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = resolveBed(g, "")
	assert.Error(t, err)

	g.Beds = append(g.Beds, testutil.NewTestBed("north", testutil.WithBedID("bed-other")))
	_, err = resolveBed(g, "North")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous (2 beds)")
}

func TestResolveSlot(t *testing.T) {
	bed := resolveFixture().Beds[0]

	for input, want := range map[string]string{
		"slot-aaaa1111": "1",
		"2":             "2",
		"#2":            "2",
		"bbbb":          "2",
		"slot-aaaa":     "1",
	} {
		s, err := resolveSlot(bed, input)
		require.NoError(t, err, input)
		assert.Equal(t, want, s.Number, input)
	}

	_, err := resolveSlot(bed, "9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveBedSlot(t *testing.T) {
	g := resolveFixture()

	b, s, err := resolveBedSlot(g, "North", "#1")
	require.NoError(t, err)
	assert.Equal(t, "North", b.Name)
	assert.Equal(t, "slot-aaaa1111", s.ID)

	_, _, err = resolveBedSlot(g, "South", "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
