// Package adapters provides the repository implementations for the inventory feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"pantry_backend/internal/feature/inventory/domain/entity"
	"pantry_backend/internal/feature/inventory/usecase"
	"pantry_backend/internal/shared/ownership"
)

// itemGorm is the GORM implementation of the ItemStore interface.
type itemGorm struct {
	db *gorm.DB
}

var _ usecase.ItemStore = (*itemGorm)(nil)

// NewItemGorm creates a new itemGorm instance with the given gorm.DB connection.
func NewItemGorm(db *gorm.DB) *itemGorm {
	return &itemGorm{db: db}
}

// InTx runs fn inside a single transaction; fn sees a store bound to the
// transaction connection. Any error from fn rolls the transaction back.
func (r *itemGorm) InTx(ctx context.Context, fn func(tx usecase.ItemStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&itemGorm{db: tx})
	})
}

// FindOwned retrieves an item by ID restricted to the owner.
// Missing and foreign-owned items both map to usecase.ErrItemNotFound.
func (r *itemGorm) FindOwned(ctx context.Context, userID, id uint) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).Scopes(ownership.Owned(userID)).
		Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts an item and fills in its generated ID.
func (r *itemGorm) Create(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// UpdateFull overwrites the caller-supplied fields of an owned item. A column
// map is used so nil pointers write NULL instead of being skipped.
// original_location_id is deliberately absent: only the placement path
// (UpdatePlacement) may touch it.
func (r *itemGorm) UpdateFull(ctx context.Context, userID uint, item *entity.Item) error {
	res := r.db.WithContext(ctx).Model(&entity.Item{}).
		Scopes(ownership.Owned(userID)).Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"item_name":       item.Name,
			"quantity":        item.Quantity,
			"date_added":      item.DateAdded,
			"expiry_date":     item.ExpiryDate,
			"barcode":         item.Barcode,
			"storage_area_id": item.StorageAreaID,
			"location_id":     item.LocationID,
			"category_id":     item.CategoryID,
			"subcategory_id":  item.SubcategoryID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

// UpdatePlacement persists quantity, location_id and original_location_id in
// one statement. Callers resolve ownership first (FindOwned in the same
// transaction).
func (r *itemGorm) UpdatePlacement(ctx context.Context, id uint, quantity int, locationID, originalLocationID *uint) error {
	return r.db.WithContext(ctx).Model(&entity.Item{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":             quantity,
			"location_id":          locationID,
			"original_location_id": originalLocationID,
		}).Error
}

// Delete removes an owned item.
func (r *itemGorm) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).Scopes(ownership.Owned(userID)).
		Where("id = ?", id).Delete(&entity.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

// itemRowModel is the scan target for the grouped listing join.
type itemRowModel struct {
	ID              uint
	ItemName        string
	Quantity        int
	DateAdded       time.Time
	ExpiryDate      *time.Time
	Barcode         *string
	StorageAreaName string
	LocationName    *string
}

// ListRows returns the user's items joined with their storage-area and
// location names, ordered for grouping with the sentinel location last
// within each storage area.
func (r *itemGorm) ListRows(ctx context.Context, userID uint) ([]usecase.ItemRow, error) {
	var rows []itemRowModel
	err := r.db.WithContext(ctx).Table("items").
		Select("items.id, items.item_name, items.quantity, items.date_added, items.expiry_date, items.barcode, "+
			"storage_areas.name AS storage_area_name, item_locations.location_name AS location_name").
		Joins("JOIN storage_areas ON storage_areas.id = items.storage_area_id").
		Joins("LEFT JOIN item_locations ON item_locations.id = items.location_id").
		Where("items.user_id = ?", userID).
		Order("storage_areas.name, CASE WHEN item_locations.location_name = '" + entity.SentinelLocationName + "' THEN 1 ELSE 0 END, item_locations.location_name, items.item_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]usecase.ItemRow, 0, len(rows))
	for _, m := range rows {
		out = append(out, usecase.ItemRow{
			ID:           m.ID,
			Name:         m.ItemName,
			Quantity:     m.Quantity,
			DateAdded:    m.DateAdded,
			ExpiryDate:   m.ExpiryDate,
			Barcode:      m.Barcode,
			StorageArea:  m.StorageAreaName,
			LocationName: m.LocationName,
		})
	}
	return out, nil
}

// SentinelLocationID finds or lazily creates the user's "Not in Storage"
// location. The (user_id, location_name) unique index makes the create
// race-safe: a concurrent loser re-selects the winner's row.
func (r *itemGorm) SentinelLocationID(ctx context.Context, userID uint) (uint, error) {
	loc := entity.Location{Name: entity.SentinelLocationName, UserID: userID}
	err := r.db.WithContext(ctx).
		Where("location_name = ? AND user_id = ?", entity.SentinelLocationName, userID).
		FirstOrCreate(&loc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing entity.Location
			if err := r.db.WithContext(ctx).
				Where("location_name = ? AND user_id = ?", entity.SentinelLocationName, userID).
				First(&existing).Error; err != nil {
				return 0, err
			}
			return existing.ID, nil
		}
		return 0, err
	}
	return loc.ID, nil
}
