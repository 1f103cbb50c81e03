package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pantry_backend/internal/feature/taxonomy/catalog"
	"pantry_backend/internal/feature/taxonomy/domain/entity"
)

// Policy selects how Provision treats a user that already has taxonomy rows.
// The policy is fixed per process (configuration), never chosen per request.
type Policy string

const (
	// PolicySkipExisting makes Provision a no-op when the user already has at
	// least one category. This is the default.
	PolicySkipExisting Policy = "skip"

	// PolicyClearAndRepopulate makes Provision delete the user's tags,
	// subcategories and categories before seeding the full catalog fresh.
	PolicyClearAndRepopulate Policy = "reset"
)

// ParsePolicy maps a configuration string to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicySkipExisting, PolicyClearAndRepopulate:
		return Policy(s), nil
	}
	return "", fmt.Errorf("unknown taxonomy policy %q", s)
}

// ProvisionStore abstracts the transactional persistence operations the
// provisioner needs. Following Go convention, the interface is defined by
// the consumer (usecase), not the provider (adapters).
type ProvisionStore interface {
	// InTx runs fn inside a single transaction. Any error returned by fn
	// rolls the whole transaction back.
	InTx(ctx context.Context, fn func(tx ProvisionStore) error) error

	// UserExists reports whether the user exists.
	UserExists(ctx context.Context, userID uint) (bool, error)

	// CountCategories returns the number of categories the user owns.
	CountCategories(ctx context.Context, userID uint) (int64, error)

	// CreateCategory inserts a category and fills in its generated ID.
	// It returns ErrDuplicateCategory on a per-user name collision.
	CreateCategory(ctx context.Context, c *entity.Category) error

	// CreateSubcategory inserts a subcategory.
	CreateSubcategory(ctx context.Context, s *entity.Subcategory) error

	// ClearTaxonomy deletes the user's tags, subcategories and categories.
	ClearTaxonomy(ctx context.Context, userID uint) error
}

// provisionUsecase seeds a user's category/subcategory taxonomy.
type provisionUsecase struct {
	store   ProvisionStore
	catalog catalog.Catalog
	policy  Policy
}

// NewProvisionUsecase creates a new provisionUsecase. The catalog is injected
// rather than referenced as package state, and the policy is the
// deployment-time choice between the two provisioning behaviors.
func NewProvisionUsecase(store ProvisionStore, cat catalog.Catalog, policy Policy) *provisionUsecase {
	return &provisionUsecase{store: store, catalog: cat, policy: policy}
}

// Provision ensures the fixed catalog exists for the user. It is idempotent:
// calling it any number of times leaves the same rows as calling it once.
// All inserts happen in one transaction; a failure rolls everything back so
// a partial taxonomy is never observable.
func (u *provisionUsecase) Provision(ctx context.Context, userID uint) error {
	err := u.store.InTx(ctx, func(tx ProvisionStore) error {
		exists, err := tx.UserExists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrUserNotFound
		}

		switch u.policy {
		case PolicyClearAndRepopulate:
			if err := tx.ClearTaxonomy(ctx, userID); err != nil {
				return fmt.Errorf("clear taxonomy: %w", err)
			}
		default: // PolicySkipExisting
			n, err := tx.CountCategories(ctx, userID)
			if err != nil {
				return err
			}
			if n > 0 {
				slog.Info("taxonomy already provisioned", "user_id", userID, "categories", n)
				return nil
			}
		}

		return u.seed(ctx, tx, userID)
	})

	// A concurrent first-time provision can race past the count check; the
	// loser hits the (user_id, name) unique index and rolls back. The winner
	// has seeded the identical rows, so the loser reports success as a no-op.
	if errors.Is(err, ErrDuplicateCategory) {
		slog.Info("lost provisioning race, taxonomy already seeded", "user_id", userID)
		return nil
	}
	return err
}

// seed inserts every catalog entry. Each category insert completes (and
// yields its generated ID) before its subcategory inserts are issued.
func (u *provisionUsecase) seed(ctx context.Context, tx ProvisionStore, userID uint) error {
	for _, e := range u.catalog {
		cat := &entity.Category{Name: e.Category, UserID: userID}
		if err := tx.CreateCategory(ctx, cat); err != nil {
			return fmt.Errorf("insert category %q: %w", e.Category, err)
		}
		for _, name := range e.Subcategories {
			sub := &entity.Subcategory{Name: name, CategoryID: cat.ID, UserID: userID}
			if err := tx.CreateSubcategory(ctx, sub); err != nil {
				return fmt.Errorf("insert subcategory %q: %w", name, err)
			}
		}
	}
	slog.Info("taxonomy provisioned", "user_id", userID,
		"categories", len(u.catalog), "subcategories", u.catalog.SubcategoryCount())
	return nil
}
