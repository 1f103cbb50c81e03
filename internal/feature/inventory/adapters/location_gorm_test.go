package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry_backend/internal/feature/inventory/domain/entity"
	"pantry_backend/internal/feature/inventory/usecase"
)

func TestLocationGorm_CreateAndList(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewLocationGorm(db)
	ctx := context.Background()

	pantry := seedArea(t, db, 1, "Pantry")
	garage := seedArea(t, db, 1, "Garage")

	loc := &entity.Location{Name: "Shelf A", UserID: 1}
	require.NoError(t, repo.Create(ctx, loc, []uint{pantry.ID, garage.ID}))
	require.NotZero(t, loc.ID)

	locs, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "Shelf A", locs[0].Name)
	assert.Len(t, locs[0].StorageAreas, 2)

	// Foreign users see nothing.
	foreign, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, foreign)
}

func TestLocationGorm_UpdateReplacesJoins(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewLocationGorm(db)
	ctx := context.Background()

	pantry := seedArea(t, db, 1, "Pantry")
	garage := seedArea(t, db, 1, "Garage")

	loc := &entity.Location{Name: "Shelf A", UserID: 1}
	require.NoError(t, repo.Create(ctx, loc, []uint{pantry.ID}))

	updated, err := repo.Update(ctx, 1, loc.ID, "Shelf A1", []uint{garage.ID})
	require.NoError(t, err)
	assert.Equal(t, "Shelf A1", updated.Name)
	require.Len(t, updated.StorageAreas, 1)
	assert.Equal(t, garage.ID, updated.StorageAreas[0].ID)

	_, err = repo.Update(ctx, 2, loc.ID, "Stolen", nil)
	assert.ErrorIs(t, err, usecase.ErrLocationNotFound)
}

func TestLocationGorm_DeleteRemovesJoins(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewLocationGorm(db)
	ctx := context.Background()

	pantry := seedArea(t, db, 1, "Pantry")
	loc := &entity.Location{Name: "Shelf A", UserID: 1}
	require.NoError(t, repo.Create(ctx, loc, []uint{pantry.ID}))

	assert.ErrorIs(t, repo.Delete(ctx, 2, loc.ID), usecase.ErrLocationNotFound)
	require.NoError(t, repo.Delete(ctx, 1, loc.ID))

	var joins int64
	require.NoError(t, db.Table("storage_area_locations").
		Where("location_id = ?", loc.ID).Count(&joins).Error)
	assert.Zero(t, joins)
}

func TestLocationGorm_CountOwnedStorageAreas(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewLocationGorm(db)
	ctx := context.Background()

	pantry := seedArea(t, db, 1, "Pantry")
	foreign := seedArea(t, db, 2, "Basement")

	n, err := repo.CountOwnedStorageAreas(ctx, 1, []uint{pantry.ID, foreign.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestStorageAreaGorm_CRUD(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStorageAreaGorm(db)
	ctx := context.Background()

	a := &entity.StorageArea{Name: "Pantry", UserID: 1}
	require.NoError(t, repo.Create(ctx, a))
	require.NotZero(t, a.ID)
	require.NoError(t, repo.Create(ctx, &entity.StorageArea{Name: "Garage", UserID: 1}))
	require.NoError(t, repo.Create(ctx, &entity.StorageArea{Name: "Basement", UserID: 2}))

	areas, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "Garage", areas[0].Name)
	assert.Equal(t, "Pantry", areas[1].Name)

	renamed, err := repo.Rename(ctx, 1, a.ID, "Kitchen Pantry")
	require.NoError(t, err)
	assert.Equal(t, "Kitchen Pantry", renamed.Name)

	_, err = repo.Rename(ctx, 2, a.ID, "Stolen")
	assert.ErrorIs(t, err, usecase.ErrStorageAreaNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 2, a.ID), usecase.ErrStorageAreaNotFound)
	require.NoError(t, repo.Delete(ctx, 1, a.ID))

	areas, err = repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, areas, 1)
}
