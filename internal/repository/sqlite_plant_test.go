package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/alexanderramin/gardenplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for i, p := range domain.DefaultPlants() {
		require.NoError(t, repo.Create(ctx, p, i))
	}

	got, err := repo.GetByName(ctx, "lettuce")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPlants()[1], got)
	assert.NotNil(t, got.IncompatiblePlants, "empty list survives as empty, not nil")
}

func TestPlantRepo_GetMissing(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))
	_, err := repo.GetByName(context.Background(), "kale")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlantRepo_DuplicateNameRejected(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestPlant("kale"), 0))
	assert.Error(t, repo.Create(ctx, testutil.NewTestPlant("kale"), 1))
}

func TestPlantRepo_ListOrderAndDeleteAll(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestPlant("zucchini"), 0))
	require.NoError(t, repo.Create(ctx, testutil.NewTestPlant("apple mint"), 1))
	require.NoError(t, repo.Create(ctx, testutil.NewTestPlant("kale"), 2))

	plants, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, plants, 3)
	assert.Equal(t, "zucchini", plants[0].Name)
	assert.Equal(t, "apple mint", plants[1].Name)
	assert.Equal(t, "kale", plants[2].Name)

	require.NoError(t, repo.DeleteAll(ctx))
	plants, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, plants)
}
