package usecase

import (
	"context"
	"sort"

	"pantry_backend/internal/feature/inventory/domain/entity"
)

// LocationRepository abstracts the persistence layer for locations and their
// storage-area memberships.
type LocationRepository interface {
	// List returns the user's locations with their storage areas loaded.
	List(ctx context.Context, userID uint) ([]entity.Location, error)

	// CountOwnedStorageAreas returns how many of the given storage area IDs
	// belong to the user.
	CountOwnedStorageAreas(ctx context.Context, userID uint, ids []uint) (int64, error)

	// Create inserts a location and its storage-area join rows in one
	// transaction.
	Create(ctx context.Context, loc *entity.Location, storageAreaIDs []uint) error

	// Update renames an owned location and replaces its storage-area join
	// rows in one transaction.
	Update(ctx context.Context, userID, id uint, name string, storageAreaIDs []uint) (*entity.Location, error)

	// Delete removes an owned location and its join rows in one transaction.
	Delete(ctx context.Context, userID, id uint) error
}

// locationUsecase implements location management.
type locationUsecase struct {
	repo LocationRepository
}

// NewLocationUsecase creates a new locationUsecase instance.
func NewLocationUsecase(repo LocationRepository) *locationUsecase {
	return &locationUsecase{repo: repo}
}

// List returns the user's locations sorted by name with the sentinel last.
func (u *locationUsecase) List(ctx context.Context, userID uint) ([]entity.Location, error) {
	locs, err := u.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(locs, func(a, b int) bool {
		if locs[a].IsSentinel() != locs[b].IsSentinel() {
			return locs[b].IsSentinel()
		}
		return locs[a].Name < locs[b].Name
	})
	return locs, nil
}

// Create adds a location placed in the given storage areas. Every referenced
// storage area must belong to the user; a foreign area reads as missing.
func (u *locationUsecase) Create(ctx context.Context, userID uint, name string, storageAreaIDs []uint) (*entity.Location, error) {
	if err := u.checkAreas(ctx, userID, storageAreaIDs); err != nil {
		return nil, err
	}
	loc := &entity.Location{Name: name, UserID: userID}
	if err := u.repo.Create(ctx, loc, storageAreaIDs); err != nil {
		return nil, err
	}
	return loc, nil
}

// Update renames an owned location and replaces its storage-area set.
func (u *locationUsecase) Update(ctx context.Context, userID, id uint, name string, storageAreaIDs []uint) (*entity.Location, error) {
	if err := u.checkAreas(ctx, userID, storageAreaIDs); err != nil {
		return nil, err
	}
	return u.repo.Update(ctx, userID, id, name, storageAreaIDs)
}

// Delete removes a location the user owns.
func (u *locationUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}

// checkAreas rejects any storage-area reference the user does not own.
func (u *locationUsecase) checkAreas(ctx context.Context, userID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	n, err := u.repo.CountOwnedStorageAreas(ctx, userID, ids)
	if err != nil {
		return err
	}
	if n != int64(len(ids)) {
		return ErrStorageAreaNotFound
	}
	return nil
}
