package usecase

import (
	"context"
	"fmt"

	"pantry_backend/internal/feature/inventory/domain/entity"
)

// StorageAreaRepository abstracts the persistence layer for storage areas.
type StorageAreaRepository interface {
	List(ctx context.Context, userID uint) ([]entity.StorageArea, error)
	Create(ctx context.Context, a *entity.StorageArea) error
	Rename(ctx context.Context, userID, id uint, name string) (*entity.StorageArea, error)
	// Delete removes an owned storage area and its location join rows in one
	// transaction.
	Delete(ctx context.Context, userID, id uint) error
}

// storageAreaUsecase implements storage area management.
type storageAreaUsecase struct {
	repo StorageAreaRepository
}

// NewStorageAreaUsecase creates a new storageAreaUsecase instance.
func NewStorageAreaUsecase(repo StorageAreaRepository) *storageAreaUsecase {
	return &storageAreaUsecase{repo: repo}
}

// List returns all storage areas owned by the user, sorted by name.
func (u *storageAreaUsecase) List(ctx context.Context, userID uint) ([]entity.StorageArea, error) {
	return u.repo.List(ctx, userID)
}

// Create adds a storage area for the user.
func (u *storageAreaUsecase) Create(ctx context.Context, userID uint, name string) (*entity.StorageArea, error) {
	a := &entity.StorageArea{Name: name, UserID: userID}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create storage area: %w", err)
	}
	return a, nil
}

// Rename renames a storage area the user owns.
func (u *storageAreaUsecase) Rename(ctx context.Context, userID, id uint, name string) (*entity.StorageArea, error) {
	return u.repo.Rename(ctx, userID, id, name)
}

// Delete removes a storage area the user owns.
func (u *storageAreaUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}
