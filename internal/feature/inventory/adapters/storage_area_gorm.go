package adapters

import (
	"context"

	"gorm.io/gorm"

	"pantry_backend/internal/feature/inventory/domain/entity"
	"pantry_backend/internal/feature/inventory/usecase"
	"pantry_backend/internal/shared/ownership"
)

// storageAreaGorm is the GORM implementation of the StorageAreaRepository interface.
type storageAreaGorm struct {
	db *gorm.DB
}

var _ usecase.StorageAreaRepository = (*storageAreaGorm)(nil)

// NewStorageAreaGorm creates a new storageAreaGorm instance with the given gorm.DB connection.
func NewStorageAreaGorm(db *gorm.DB) *storageAreaGorm {
	return &storageAreaGorm{db: db}
}

// List returns all storage areas owned by the user, sorted by name.
func (r *storageAreaGorm) List(ctx context.Context, userID uint) ([]entity.StorageArea, error) {
	var areas []entity.StorageArea
	err := r.db.WithContext(ctx).Scopes(ownership.Owned(userID)).
		Order("name").Find(&areas).Error
	return areas, err
}

// Create inserts a storage area and fills in its generated ID.
func (r *storageAreaGorm) Create(ctx context.Context, a *entity.StorageArea) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// Rename renames an owned storage area and returns the updated row.
func (r *storageAreaGorm) Rename(ctx context.Context, userID, id uint, name string) (*entity.StorageArea, error) {
	res := r.db.WithContext(ctx).Model(&entity.StorageArea{}).
		Scopes(ownership.Owned(userID)).Where("id = ?", id).
		Update("name", name)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrStorageAreaNotFound
	}
	var a entity.StorageArea
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes an owned storage area and its location join rows in a
// single transaction.
func (r *storageAreaGorm) Delete(ctx context.Context, userID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entity.StorageArea{}).Scopes(ownership.Owned(userID)).
			Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return usecase.ErrStorageAreaNotFound
		}
		if err := tx.Exec("DELETE FROM storage_area_locations WHERE storage_area_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Scopes(ownership.Owned(userID)).
			Where("id = ?", id).Delete(&entity.StorageArea{}).Error
	})
}
