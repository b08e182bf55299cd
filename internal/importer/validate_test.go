package importer

import (
	"strings"
	"testing"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMinimalExport() *GardenExport {
	return &GardenExport{
		Garden: &GardenSchema{
			Name:     "Backyard",
			GridSize: SizeSchema{Width: 10, Height: 8},
			Beds: []BedSchema{
				{ID: "b1", Name: "North", Size: SizeSchema{Width: 4, Height: 2}, Slots: []SlotSchema{
					{ID: "s1", Number: "1", Size: SizeSchema{Width: 2, Height: 2}, Plantings: []PlantingSchema{
						{Plant: "carrot", StartWeek: 1, EndWeek: 10},
						{Plant: "lettuce", StartWeek: 11, EndWeek: 18},
					}},
				}},
			},
		},
		Plants:      []PlantSchema{{Name: "carrot", Image: "🥕", GrowthDuration: 10, Season: "spring"}},
		CurrentWeek: 4,
	}
}

func TestValidateGardenExport_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateGardenExport(validMinimalExport()))
}

func TestValidateGardenExport_PlantsOnlyIsLenient(t *testing.T) {
	e := &GardenExport{Plants: []PlantSchema{{Name: ""}, {Name: "x"}}}
	assert.Empty(t, ValidateGardenExport(e))
}

func TestValidateGardenExport_CollectsAllErrors(t *testing.T) {
	e := validMinimalExport()
	e.Garden.GridSize = SizeSchema{Width: 2, Height: 51}
	e.Garden.Beds = append(e.Garden.Beds, BedSchema{ID: "b1", Size: SizeSchema{Width: 0, Height: 1}, Slots: []SlotSchema{
		{ID: "s1", Size: SizeSchema{Width: 1, Height: 1}, Plantings: []PlantingSchema{
			{Plant: "", StartWeek: 9, EndWeek: 3},
		}},
	}})
	e.Plants = append(e.Plants, PlantSchema{Name: "carrot"}, PlantSchema{Name: "  "}, PlantSchema{Name: "kale", Season: "monsoon"})
	e.CurrentWeek = 60

	errs := ValidateGardenExport(e)
	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	joined := strings.Join(msgs, "\n")

	for _, want := range []string{
		"garden.gridSize.width 2",
		"garden.gridSize.height 51",
		`garden.beds[1].id "b1" is duplicated`,
		"garden.beds[1].size 0x1",
		`garden.beds[1].slots[0].id "s1" is duplicated`,
		"garden.beds[1].slots[0].plantings[0].plant is required",
		"garden.beds[1].slots[0].plantings[0] weeks 9-3",
		`plants[1].name "carrot" is duplicated`,
		"plants[2].name is required",
		`plants[3].season: invalid value "monsoon"`,
		"currentWeek 60",
	} {
		assert.Contains(t, joined, want)
	}
}

func TestValidateGardenExport_OverlappingPlantings(t *testing.T) {
	e := validMinimalExport()
	e.Garden.Beds[0].Slots[0].Plantings = []PlantingSchema{
		{Plant: "carrot", StartWeek: 1, EndWeek: 10},
		{Plant: "lettuce", StartWeek: 10, EndWeek: 14},
	}
	errs := ValidateGardenExport(e)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "overlap carrot (W1-W10)")
}

func TestValidationError_FormatsAndClassifies(t *testing.T) {
	e := validMinimalExport()
	e.CurrentWeek = 99
	e.Garden.GridSize.Width = 1

	var err error = &ValidationError{Errs: ValidateGardenExport(e)}
	assert.ErrorIs(t, err, domain.ErrFormat)
	assert.True(t, strings.HasPrefix(err.Error(), "import validation failed (2 errors):\n  - "))
}
