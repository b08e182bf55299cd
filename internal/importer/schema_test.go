package importer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populatedState(t *testing.T) domain.GardenState {
	t.Helper()
	s, err := domain.ApplyAll(domain.DefaultState(),
		domain.RenameGarden{NewName: "Back Yard  Plot"},
		domain.AddBed{Bed: domain.Bed{ID: "b1", Name: "North", Position: domain.Position{X: 1, Y: 1}, Size: domain.Size{Width: 4, Height: 2}}},
		domain.AddSlot{BedID: "b1", Slot: domain.Slot{ID: "s1", Number: "1", Position: domain.Position{X: 1, Y: 1}, Size: domain.Size{Width: 2, Height: 2}}},
		domain.AddSlot{BedID: "b1", Slot: domain.Slot{ID: "s2", Number: "2", Position: domain.Position{X: 3, Y: 1}, Size: domain.Size{Width: 2, Height: 2}}},
		domain.AddPlanting{BedID: "b1", SlotID: "s1", Planting: domain.Planting{Plant: "carrot", StartWeek: 3, EndWeek: 12}},
		domain.AddPlanting{BedID: "b1", SlotID: "s1", Planting: domain.Planting{Plant: "lettuce", StartWeek: 13, EndWeek: 20}},
		domain.AddBed{Bed: domain.Bed{ID: "b2", Name: "Empty", Position: domain.Position{X: 6, Y: 4}, Size: domain.Size{Width: 2, Height: 2}}},
		domain.SetCurrentWeek{Week: 7},
	)
	require.NoError(t, err)
	return s
}

func TestJSONRoundTrip_FullGarden(t *testing.T) {
	s := populatedState(t)

	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, s))
	assert.Contains(t, buf.String(), `"currentWeek": 7`)
	assert.Contains(t, buf.String(), `"startWeek": 3`)

	payload, err := ParseJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, FullGarden, payload.Kind)
	assert.Equal(t, s, payload.State())
}

func TestDecodeJSON_Shapes(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		kind    PayloadKind
		wantErr bool
	}{
		{"full", `{"garden":{"name":"g","gridSize":{"width":5,"height":5},"beds":[]},"plants":[]}`, FullGarden, false},
		{"plants only", `{"plants":[{"name":"kale","image":"🥬"}]}`, PlantsOnly, false},
		{"garden without plants", `{"garden":{"name":"g"}}`, 0, true},
		{"neither", `{"currentWeek":3}`, 0, true},
		{"null garden", `{"garden":null,"plants":[]}`, 0, true},
		{"not json", `garden`, 0, true},
		{"array", `[1,2]`, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := DecodeJSON(strings.NewReader(tc.body))
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, e.Kind())
		})
	}
}

func TestParseJSON_PlantsOnlyDropsIncomplete(t *testing.T) {
	body := `{"plants":[
		{"name":"kale","image":"🥬","growthDuration":9},
		{"name":"","image":"x"},
		{"name":"bean"}
	]}`
	p, err := ParseJSON(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, PlantsOnly, p.Kind)
	require.Len(t, p.Plants, 1)
	assert.Equal(t, "kale", p.Plants[0].Name)
	assert.Equal(t, 9, p.Plants[0].GrowthDuration)
	assert.Equal(t, 2, p.Rejected)
}

func TestParseJSON_InvalidFullGarden(t *testing.T) {
	body := `{"garden":{"name":"g","gridSize":{"width":60,"height":5},"beds":[]},"plants":[{"name":"a"},{"name":"a"}],"currentWeek":0}`
	_, err := ParseJSON(strings.NewReader(body))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFormat)
	assert.Contains(t, err.Error(), "(2 errors)")
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "My_Garden_garden_setup.json", ExportFileName("My Garden"))
	assert.Equal(t, "Back_Yard_Plot_garden_setup.json", ExportFileName("Back Yard  Plot"))
}

func TestLoadFile_ByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "plants.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"plants":[{"name":"kale","image":"🥬"}]}`), 0o644))
	p, err := LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, PlantsOnly, p.Kind)
	assert.Len(t, p.Plants, 1)

	csvPath := filepath.Join(dir, "plants.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("name,image\nkale,🥬\n"), 0o644))
	p, err = LoadFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, p.Plants, 1)

	txtPath := filepath.Join(dir, "plants.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0o644))
	_, err = LoadFile(txtPath)
	assert.ErrorIs(t, err, domain.ErrFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
