package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/alexanderramin/gardenplan/internal/importer"
	"github.com/alexanderramin/gardenplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportJSON_ImportsIntoFreshDatabase(t *testing.T) {
	src := setupServices(t)
	ctx := context.Background()
	seedBed(t, src.garden)
	_, err := src.garden.PlantAt(ctx, "b1", "s1", "carrot", 4)
	require.NoError(t, err)
	_, err = src.garden.Dispatch(ctx,
		domain.AddPlant{Plant: testutil.NewTestPlant("kale", testutil.WithIncompatible("bean"))},
		domain.SetCurrentWeek{Week: 7},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, src.exports.ExportJSON(ctx, &buf))
	assert.Contains(t, buf.String(), `"currentWeek": 7`)

	dst := setupServices(t)
	_, err = dst.imports.ImportJSON(ctx, &buf)
	require.NoError(t, err)

	want, err := src.garden.State(ctx)
	require.NoError(t, err)
	got, err := dst.garden.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExportCSV_WritesLibrary(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, s.exports.ExportCSV(ctx, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], `"carrot","🥕"`))
	assert.True(t, strings.HasPrefix(lines[2], `"lettuce","🥬"`))

	// Re-importing into the same library skips everything.
	res, err := s.imports.ImportCSV(ctx, &buf)
	require.NoError(t, err)
	assert.Zero(t, res.Added)
	assert.Len(t, res.Skipped, 2)
}

func TestExport_DefaultFileName(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	name, err := s.exports.DefaultFileName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "My_Garden_garden_setup.json", name)
	assert.Equal(t, importer.PlantsCSVFileName, "plants_database.csv")
}
