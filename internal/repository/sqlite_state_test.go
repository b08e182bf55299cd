package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/alexanderramin/gardenplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populatedState() domain.GardenState {
	north := testutil.NewTestBed("North", testutil.WithBedRect(0, 0, 4, 2), testutil.WithSlots(
		testutil.NewTestSlot("1", testutil.WithSlotRect(0, 0, 2, 2),
			testutil.WithPlanting("carrot", 1, 10),
			testutil.WithPlanting("lettuce", 12, 19)),
		testutil.NewTestSlot("2", testutil.WithSlotRect(2, 0, 2, 2)),
	))
	south := testutil.NewTestBed("South", testutil.WithBedRect(0, 4, 3, 3))
	s := testutil.NewTestState(north, south)
	s, err := s.AddPlant(testutil.NewTestPlant("fennel", testutil.WithIncompatible("carrot")))
	if err != nil {
		panic(err)
	}
	s.CurrentWeek = 9
	return s
}

func TestStateRepo_EmptyDatabaseLoadsDefault(t *testing.T) {
	repo := NewSQLiteStateRepo(testutil.NewTestDB(t))

	s, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultState(), s)
}

func TestStateRepo_SaveLoadRoundTrip(t *testing.T) {
	repo := NewSQLiteStateRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	want := populatedState()

	require.NoError(t, repo.Save(ctx, want))
	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStateRepo_SaveReplacesPreviousSnapshot(t *testing.T) {
	repo := NewSQLiteStateRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, populatedState()))

	smaller := domain.DefaultState().DeletePlant("lettuce")
	smaller, err := smaller.RenameGarden("Balcony")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, smaller))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, smaller, got)
	assert.Empty(t, got.Garden.Beds)
	assert.Equal(t, []string{"carrot"}, got.Plants.Names())
}

func TestStateRepo_KeepsDanglingPlantings(t *testing.T) {
	repo := NewSQLiteStateRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s := populatedState().DeletePlant("carrot")
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	dangling := got.DanglingPlantings()
	require.Len(t, dangling, 1)
	assert.Equal(t, "carrot", dangling[0].Planting.Plant)
}

func TestStateRepo_PreservesOrder(t *testing.T) {
	repo := NewSQLiteStateRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	// Ids sort opposite to insertion order.
	s := testutil.NewTestState(
		testutil.NewTestBed("Zed", testutil.WithBedID("zzz"), testutil.WithSlots(
			testutil.NewTestSlot("b", testutil.WithSlotID("s-b"), testutil.WithPlanting("lettuce", 20, 27), testutil.WithPlanting("carrot", 1, 10)),
			testutil.NewTestSlot("a", testutil.WithSlotID("s-a")),
		)),
		testutil.NewTestBed("Ant", testutil.WithBedID("aaa")),
	)
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Garden.Beds, 2)
	assert.Equal(t, "zzz", got.Garden.Beds[0].ID)
	assert.Equal(t, "s-b", got.Garden.Beds[0].Slots[0].ID)
	assert.Equal(t, "lettuce", got.Garden.Beds[0].Slots[0].Plantings[0].Plant)
}
