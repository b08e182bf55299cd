package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/gardenplan/internal/cli/formatter"
	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/alexanderramin/gardenplan/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewDriver(t *testing.T, app *App) (*teatest.Driver, *gardenViewModel) {
	t.Helper()
	m := newGardenViewModel(context.Background(), app)
	d := teatest.New(t, m, teatest.WithSize(100, 40))
	d.DrainInit()
	return d, m
}

func viewText(d *teatest.Driver) string {
	return formatter.StripANSI(d.View())
}

func TestGardenView_LoadsAndRenders(t *testing.T) {
	app := testApp(t)
	seedGarden(t, app)

	d, m := newViewDriver(t, app)
	require.True(t, m.loaded)

	out := viewText(d)
	assert.Contains(t, out, "My Garden · Week 1/52")
	assert.Contains(t, out, "(0,0) North #1: empty")
	assert.Contains(t, out, "Plant: 🥕 carrot (10 weeks)")
}

func TestGardenView_CursorStaysOnGrid(t *testing.T) {
	app := testApp(t)
	d, m := newViewDriver(t, app)

	d.PressUp()
	d.PressLeft()
	assert.Equal(t, domain.Position{X: 0, Y: 0}, m.cursor)

	for i := 0; i < 20; i++ {
		d.PressRight()
		d.PressKey('j')
	}
	assert.Equal(t, domain.Position{X: 9, Y: 7}, m.cursor)
	assert.Contains(t, viewText(d), "(9,7) open ground")
}

func TestGardenView_PlantAndRemove(t *testing.T) {
	app := testApp(t)
	seedGarden(t, app)
	d, m := newViewDriver(t, app)

	d.PressTab() // lettuce
	d.PressRight()
	d.PressDown()
	d.PressEnter()

	out := viewText(d)
	assert.Contains(t, out, "Planted lettuce for W1-W8")
	assert.Contains(t, out, "(1,1) North #1: lettuce, W1-W8")
	assert.Equal(t, 1, m.state.Summary().Plantings)

	d.PressEnter()
	assert.ErrorIs(t, m.err, domain.ErrOverlap)

	d.PressKey('x')
	assert.NoError(t, m.err)
	assert.Contains(t, viewText(d), "Removed lettuce (W1-W8)")
	assert.Equal(t, 0, state(t, app).Summary().Plantings)
}

func TestGardenView_WeekNavigationPersists(t *testing.T) {
	app := testApp(t)
	d, m := newViewDriver(t, app)

	d.PressKey('[')
	assert.Contains(t, viewText(d), "Already at week 1")

	d.PressKey(']')
	d.PressKey('n')
	assert.Equal(t, 3, m.state.CurrentWeek)
	assert.Equal(t, 3, state(t, app).CurrentWeek)

	d.PressKey('b')
	assert.Equal(t, 2, state(t, app).CurrentWeek)
}

func TestGardenView_PlantCycleWraps(t *testing.T) {
	app := testApp(t)
	d, m := newViewDriver(t, app)

	d.Press(tea.KeyShiftTab)
	p, ok := m.selectedPlant()
	require.True(t, ok)
	assert.Equal(t, "lettuce", p.Name)

	d.PressTab()
	p, _ = m.selectedPlant()
	assert.Equal(t, "carrot", p.Name)
}

func TestGardenView_RemoveOnEmptyCellShowsError(t *testing.T) {
	app := testApp(t)
	d, m := newViewDriver(t, app)

	d.PressKey('x')
	assert.ErrorIs(t, m.err, domain.ErrNotFound)
	assert.Contains(t, viewText(d), "Plant: 🥕 carrot")
}

func TestGardenView_HelpAndQuit(t *testing.T) {
	app := testApp(t)
	d, m := newViewDriver(t, app)

	d.PressKey('?')
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, viewText(d), "prev plant")

	d.PressKey('q')
	assert.True(t, d.Quitting)
}
