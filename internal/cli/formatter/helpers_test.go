package formatter

import (
	"testing"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/alexanderramin/gardenplan/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	got := StripANSI(RenderTable([]string{"A", "BB"}, [][]string{{"xx", "y"}}))
	assert.Equal(t, "A   BB\n──  ──\nxx  y\n", got)
	assert.Empty(t, RenderTable(nil, nil))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "bed-6f1c2a9d", TruncID("bed-6f1c2a9d-1234-5678-9abc-def012345678"))
	assert.Equal(t, "slot-0123abcd", TruncID("slot-0123abcd-0000"))
	assert.Equal(t, "b1", TruncID("b1"))
}

func TestFormatMonths(t *testing.T) {
	assert.Equal(t, "Mar Apr May", FormatMonths([]int{3, 4, 5}))
	assert.Equal(t, "--", FormatMonths(nil))
	assert.Equal(t, "Dec 13", FormatMonths([]int{12, 13}))
}

func TestPlantGlyph(t *testing.T) {
	assert.Equal(t, "🥕", PlantGlyph(domain.Plant{Name: "carrot", Image: "🥕"}))
	assert.Equal(t, "ka", PlantGlyph(domain.Plant{Name: "kale", Image: "K"}))
	assert.Equal(t, "x ", PlantGlyph(domain.Plant{Name: "x"}))
}

func TestNeedBadge(t *testing.T) {
	assert.Equal(t, "●●○", StripANSI(NeedBadge(domain.NeedMedium)))
	assert.Equal(t, "---", StripANSI(NeedBadge(0)))
}

func TestFormatSummary(t *testing.T) {
	got := StripANSI(FormatSummary(domain.DefaultState().Summary()))
	assert.Contains(t, got, "My Garden  10x8 grid")
	assert.Contains(t, got, "Week 1 of 52")
	assert.Contains(t, got, "0 beds, 0 slots, 0 plantings, 2 plants in library")
}

func TestFormatCheck(t *testing.T) {
	assert.Contains(t, StripANSI(FormatCheck(1, nil, nil, nil)), "No problems found.")

	bed := testutil.NewTestBed("Far", testutil.WithBedRect(9, 9, 2, 2))
	got := StripANSI(FormatCheck(4, nil, []domain.Bed{bed}, []domain.CompanionConflict{{BedName: "North", A: "carrot", B: "fennel"}}))
	assert.Contains(t, got, "BEDS OUTSIDE THE GRID")
	assert.Contains(t, got, "Far at 9,9 size 2x2")
	assert.Contains(t, got, "INCOMPATIBLE NEIGHBOURS IN WEEK 4")
	assert.Contains(t, got, "carrot and fennel in North")
}

func TestFormatBedDetail(t *testing.T) {
	bed := testutil.NewTestBed("North", testutil.WithSlots(
		testutil.NewTestSlot("1", testutil.WithSlotRect(0, 0, 2, 2), testutil.WithPlanting("carrot", 1, 10)),
		testutil.NewTestSlot("2", testutil.WithSlotRect(2, 0, 2, 2)),
	))
	got := StripANSI(FormatBedDetail(bed))
	assert.Contains(t, got, "╭")
	assert.Contains(t, got, "NORTH")
	assert.Contains(t, got, "#1 at 0,0 size 2x2")
	assert.Contains(t, got, "carrot W1-W10")
	assert.Contains(t, got, "#2 at 2,0 size 2x2")
	assert.Contains(t, got, "empty")

	empty := StripANSI(FormatBedDetail(testutil.NewTestBed("Bare")))
	assert.Contains(t, empty, "No slots yet.")
}

func TestFormatPlantDetail(t *testing.T) {
	got := StripANSI(FormatPlantDetail(testutil.NewTestPlant("kale"), 1))
	assert.Contains(t, got, "KALE")
	assert.Contains(t, got, "Family       Testaceae")
	assert.Contains(t, got, "Planted      1 time")
}
