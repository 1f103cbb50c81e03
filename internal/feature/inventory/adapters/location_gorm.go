package adapters

import (
	"context"

	"gorm.io/gorm"

	"pantry_backend/internal/feature/inventory/domain/entity"
	"pantry_backend/internal/feature/inventory/usecase"
	"pantry_backend/internal/shared/ownership"
)

// locationGorm is the GORM implementation of the LocationRepository interface.
type locationGorm struct {
	db *gorm.DB
}

var _ usecase.LocationRepository = (*locationGorm)(nil)

// NewLocationGorm creates a new locationGorm instance with the given gorm.DB connection.
func NewLocationGorm(db *gorm.DB) *locationGorm {
	return &locationGorm{db: db}
}

// List returns the user's locations with their storage areas loaded.
func (r *locationGorm) List(ctx context.Context, userID uint) ([]entity.Location, error) {
	var locs []entity.Location
	err := r.db.WithContext(ctx).Preload("StorageAreas").
		Scopes(ownership.Owned(userID)).Find(&locs).Error
	return locs, err
}

// CountOwnedStorageAreas returns how many of the given storage area IDs
// belong to the user.
func (r *locationGorm) CountOwnedStorageAreas(ctx context.Context, userID uint, ids []uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.StorageArea{}).
		Scopes(ownership.Owned(userID)).Where("id IN ?", ids).Count(&n).Error
	return n, err
}

// Create inserts a location and its storage-area join rows in one transaction.
func (r *locationGorm) Create(ctx context.Context, loc *entity.Location, storageAreaIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(loc).Error; err != nil {
			return err
		}
		return insertJoins(tx, loc.ID, storageAreaIDs)
	})
}

// Update renames an owned location and replaces its storage-area join rows
// in one transaction.
func (r *locationGorm) Update(ctx context.Context, userID, id uint, name string, storageAreaIDs []uint) (*entity.Location, error) {
	var loc entity.Location
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Location{}).
			Scopes(ownership.Owned(userID)).Where("id = ?", id).
			Update("location_name", name)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrLocationNotFound
		}
		if err := tx.Exec("DELETE FROM storage_area_locations WHERE location_id = ?", id).Error; err != nil {
			return err
		}
		if err := insertJoins(tx, id, storageAreaIDs); err != nil {
			return err
		}
		return tx.Preload("StorageAreas").First(&loc, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// Delete removes an owned location and its join rows in one transaction.
// Join rows go first so the location row is never deleted while referenced.
func (r *locationGorm) Delete(ctx context.Context, userID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entity.Location{}).Scopes(ownership.Owned(userID)).
			Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return usecase.ErrLocationNotFound
		}
		if err := tx.Exec("DELETE FROM storage_area_locations WHERE location_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Scopes(ownership.Owned(userID)).
			Where("id = ?", id).Delete(&entity.Location{}).Error
	})
}

// insertJoins writes the storage_area_locations rows for a location.
func insertJoins(tx *gorm.DB, locationID uint, storageAreaIDs []uint) error {
	for _, areaID := range storageAreaIDs {
		if err := tx.Exec(
			"INSERT INTO storage_area_locations (storage_area_id, location_id) VALUES (?, ?)",
			areaID, locationID,
		).Error; err != nil {
			return err
		}
	}
	return nil
}
