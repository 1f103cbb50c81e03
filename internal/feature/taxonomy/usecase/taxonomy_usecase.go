package usecase

import (
	"context"
	"fmt"

	"pantry_backend/internal/feature/taxonomy/domain/entity"
)

// TaxonomyRepository abstracts the persistence layer for categories,
// subcategories and tags. Every mutation is owner-scoped: a row belonging to
// another user behaves exactly like a missing row.
type TaxonomyRepository interface {
	ListCategories(ctx context.Context, userID uint) ([]entity.Category, error)
	CreateCategory(ctx context.Context, c *entity.Category) error
	RenameCategory(ctx context.Context, userID, id uint, name string) (*entity.Category, error)
	// DeleteCategoryCascade removes a category and its subcategories in one
	// transaction.
	DeleteCategoryCascade(ctx context.Context, userID, id uint) error

	// ListSubcategories returns the user's subcategories, optionally filtered
	// by parent category.
	ListSubcategories(ctx context.Context, userID uint, categoryID *uint) ([]entity.Subcategory, error)
	CreateSubcategory(ctx context.Context, s *entity.Subcategory) error
	RenameSubcategory(ctx context.Context, userID, id uint, name string) (*entity.Subcategory, error)
	DeleteSubcategory(ctx context.Context, userID, id uint) error

	ListTags(ctx context.Context, userID uint) ([]entity.Tag, error)
	CreateTag(ctx context.Context, t *entity.Tag) error
	DeleteTag(ctx context.Context, userID, id uint) error
}

// taxonomyUsecase implements category/subcategory/tag management.
type taxonomyUsecase struct {
	repo TaxonomyRepository
}

// NewTaxonomyUsecase creates a new taxonomyUsecase instance.
func NewTaxonomyUsecase(repo TaxonomyRepository) *taxonomyUsecase {
	return &taxonomyUsecase{repo: repo}
}

// ListCategories returns all categories owned by the user.
func (u *taxonomyUsecase) ListCategories(ctx context.Context, userID uint) ([]entity.Category, error) {
	return u.repo.ListCategories(ctx, userID)
}

// CreateCategory creates a category for the user.
func (u *taxonomyUsecase) CreateCategory(ctx context.Context, userID uint, name string) (*entity.Category, error) {
	c := &entity.Category{Name: name, UserID: userID}
	if err := u.repo.CreateCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// RenameCategory renames a category the user owns.
func (u *taxonomyUsecase) RenameCategory(ctx context.Context, userID, id uint, name string) (*entity.Category, error) {
	return u.repo.RenameCategory(ctx, userID, id, name)
}

// DeleteCategory removes a category the user owns together with its
// subcategories.
func (u *taxonomyUsecase) DeleteCategory(ctx context.Context, userID, id uint) error {
	return u.repo.DeleteCategoryCascade(ctx, userID, id)
}

// ListSubcategories returns the user's subcategories, optionally filtered by
// parent category.
func (u *taxonomyUsecase) ListSubcategories(ctx context.Context, userID uint, categoryID *uint) ([]entity.Subcategory, error) {
	return u.repo.ListSubcategories(ctx, userID, categoryID)
}

// CreateSubcategory creates a subcategory under one of the user's categories.
// The parent category must belong to the same user.
func (u *taxonomyUsecase) CreateSubcategory(ctx context.Context, userID, categoryID uint, name string) (*entity.Subcategory, error) {
	cats, err := u.repo.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	owned := false
	for _, c := range cats {
		if c.ID == categoryID {
			owned = true
			break
		}
	}
	if !owned {
		return nil, ErrCategoryNotFound
	}

	s := &entity.Subcategory{Name: name, CategoryID: categoryID, UserID: userID}
	if err := u.repo.CreateSubcategory(ctx, s); err != nil {
		return nil, fmt.Errorf("create subcategory: %w", err)
	}
	return s, nil
}

// RenameSubcategory renames a subcategory the user owns.
func (u *taxonomyUsecase) RenameSubcategory(ctx context.Context, userID, id uint, name string) (*entity.Subcategory, error) {
	return u.repo.RenameSubcategory(ctx, userID, id, name)
}

// DeleteSubcategory removes a subcategory the user owns.
func (u *taxonomyUsecase) DeleteSubcategory(ctx context.Context, userID, id uint) error {
	return u.repo.DeleteSubcategory(ctx, userID, id)
}

// ListTags returns all tags owned by the user.
func (u *taxonomyUsecase) ListTags(ctx context.Context, userID uint) ([]entity.Tag, error) {
	return u.repo.ListTags(ctx, userID)
}

// CreateTag creates a tag for the user.
func (u *taxonomyUsecase) CreateTag(ctx context.Context, userID uint, name string) (*entity.Tag, error) {
	t := &entity.Tag{Name: name, UserID: userID}
	if err := u.repo.CreateTag(ctx, t); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return t, nil
}

// DeleteTag removes a tag the user owns.
func (u *taxonomyUsecase) DeleteTag(ctx context.Context, userID, id uint) error {
	return u.repo.DeleteTag(ctx, userID, id)
}
