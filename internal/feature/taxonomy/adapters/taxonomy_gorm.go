// Package adapters provides the repository implementations for the taxonomy feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authentity "pantry_backend/internal/feature/auth/domain/entity"
	"pantry_backend/internal/feature/taxonomy/domain/entity"
	"pantry_backend/internal/feature/taxonomy/usecase"
	"pantry_backend/internal/shared/ownership"
)

// taxonomyGorm is the GORM implementation of both the ProvisionStore and the
// TaxonomyRepository interfaces.
type taxonomyGorm struct {
	db *gorm.DB
}

var (
	_ usecase.ProvisionStore     = (*taxonomyGorm)(nil)
	_ usecase.TaxonomyRepository = (*taxonomyGorm)(nil)
)

// NewTaxonomyGorm creates a new taxonomyGorm instance with the given gorm.DB connection.
func NewTaxonomyGorm(db *gorm.DB) *taxonomyGorm {
	return &taxonomyGorm{db: db}
}

// InTx runs fn inside a single transaction; fn sees a store bound to the
// transaction connection. Any error from fn rolls the transaction back.
func (r *taxonomyGorm) InTx(ctx context.Context, fn func(tx usecase.ProvisionStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&taxonomyGorm{db: tx})
	})
}

// UserExists reports whether a user row with the given ID exists.
func (r *taxonomyGorm) UserExists(ctx context.Context, userID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&authentity.User{}).
		Where("id = ?", userID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountCategories returns the number of categories the user owns.
func (r *taxonomyGorm) CountCategories(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Category{}).
		Scopes(ownership.Owned(userID)).Count(&n).Error
	return n, err
}

// CreateCategory inserts a category and fills in its generated ID.
// A (user_id, name) unique index violation maps to usecase.ErrDuplicateCategory.
func (r *taxonomyGorm) CreateCategory(ctx context.Context, c *entity.Category) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrDuplicateCategory
		}
		return err
	}
	return nil
}

// CreateSubcategory inserts a subcategory.
func (r *taxonomyGorm) CreateSubcategory(ctx context.Context, s *entity.Subcategory) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// ClearTaxonomy deletes the user's tags, subcategories and categories, in
// that order so child rows never outlive their parents.
func (r *taxonomyGorm) ClearTaxonomy(ctx context.Context, userID uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Scopes(ownership.Owned(userID)).Delete(&entity.Tag{}).Error; err != nil {
		return err
	}
	if err := db.Scopes(ownership.Owned(userID)).Delete(&entity.Subcategory{}).Error; err != nil {
		return err
	}
	return db.Scopes(ownership.Owned(userID)).Delete(&entity.Category{}).Error
}

// ListCategories returns all categories owned by the user.
func (r *taxonomyGorm) ListCategories(ctx context.Context, userID uint) ([]entity.Category, error) {
	var cats []entity.Category
	err := r.db.WithContext(ctx).Scopes(ownership.Owned(userID)).
		Order("name").Find(&cats).Error
	return cats, err
}

// RenameCategory renames an owned category and returns the updated row.
// It returns usecase.ErrCategoryNotFound when no owned row matches.
func (r *taxonomyGorm) RenameCategory(ctx context.Context, userID, id uint, name string) (*entity.Category, error) {
	res := r.db.WithContext(ctx).Model(&entity.Category{}).
		Scopes(ownership.Owned(userID)).Where("id = ?", id).
		Update("name", name)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrCategoryNotFound
	}
	var c entity.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteCategoryCascade removes an owned category and its subcategories in a
// single transaction. It returns usecase.ErrCategoryNotFound when no owned
// row matches.
func (r *taxonomyGorm) DeleteCategoryCascade(ctx context.Context, userID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(ownership.Owned(userID)).
			Where("category_id = ?", id).Delete(&entity.Subcategory{}).Error; err != nil {
			return err
		}
		res := tx.Scopes(ownership.Owned(userID)).Where("id = ?", id).Delete(&entity.Category{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrCategoryNotFound
		}
		return nil
	})
}

// ListSubcategories returns the user's subcategories, optionally filtered by
// parent category.
func (r *taxonomyGorm) ListSubcategories(ctx context.Context, userID uint, categoryID *uint) ([]entity.Subcategory, error) {
	q := r.db.WithContext(ctx).Scopes(ownership.Owned(userID))
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	var subs []entity.Subcategory
	err := q.Order("name").Find(&subs).Error
	return subs, err
}

// RenameSubcategory renames an owned subcategory and returns the updated row.
func (r *taxonomyGorm) RenameSubcategory(ctx context.Context, userID, id uint, name string) (*entity.Subcategory, error) {
	res := r.db.WithContext(ctx).Model(&entity.Subcategory{}).
		Scopes(ownership.Owned(userID)).Where("id = ?", id).
		Update("name", name)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrSubcategoryNotFound
	}
	var s entity.Subcategory
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSubcategory removes an owned subcategory.
func (r *taxonomyGorm) DeleteSubcategory(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).Scopes(ownership.Owned(userID)).
		Where("id = ?", id).Delete(&entity.Subcategory{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSubcategoryNotFound
	}
	return nil
}

// ListTags returns all tags owned by the user.
func (r *taxonomyGorm) ListTags(ctx context.Context, userID uint) ([]entity.Tag, error) {
	var tags []entity.Tag
	err := r.db.WithContext(ctx).Scopes(ownership.Owned(userID)).
		Order("name").Find(&tags).Error
	return tags, err
}

// CreateTag inserts a tag.
func (r *taxonomyGorm) CreateTag(ctx context.Context, t *entity.Tag) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// DeleteTag removes an owned tag.
func (r *taxonomyGorm) DeleteTag(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).Scopes(ownership.Owned(userID)).
		Where("id = ?", id).Delete(&entity.Tag{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTagNotFound
	}
	return nil
}
