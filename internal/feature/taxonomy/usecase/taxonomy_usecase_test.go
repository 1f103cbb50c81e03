package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry_backend/internal/feature/taxonomy/domain/entity"
)

// mockTaxonomyRepo is a function-field mock of the TaxonomyRepository interface.
type mockTaxonomyRepo struct {
	TaxonomyRepository
	ListCategoriesFunc    func(ctx context.Context, userID uint) ([]entity.Category, error)
	CreateSubcategoryFunc func(ctx context.Context, s *entity.Subcategory) error
}

func (m *mockTaxonomyRepo) ListCategories(ctx context.Context, userID uint) ([]entity.Category, error) {
	return m.ListCategoriesFunc(ctx, userID)
}

func (m *mockTaxonomyRepo) CreateSubcategory(ctx context.Context, s *entity.Subcategory) error {
	return m.CreateSubcategoryFunc(ctx, s)
}

// TestCreateSubcategory_ParentOwnership verifies that a subcategory can only
// be attached to a category the same user owns.
func TestCreateSubcategory_ParentOwnership(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ownedCats  []entity.Category
		categoryID uint
		wantErr    error
	}{
		{
			name:       "success: parent owned by user",
			ownedCats:  []entity.Category{{ID: 3, Name: "Beverages", UserID: 1}},
			categoryID: 3,
			wantErr:    nil,
		},
		{
			name:       "failure: parent owned by another user",
			ownedCats:  []entity.Category{{ID: 3, Name: "Beverages", UserID: 1}},
			categoryID: 7,
			wantErr:    ErrCategoryNotFound,
		},
		{
			name:       "failure: user has no categories",
			ownedCats:  nil,
			categoryID: 3,
			wantErr:    ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			created := false
			repo := &mockTaxonomyRepo{
				ListCategoriesFunc: func(ctx context.Context, userID uint) ([]entity.Category, error) {
					return tt.ownedCats, nil
				},
				CreateSubcategoryFunc: func(ctx context.Context, s *entity.Subcategory) error {
					created = true
					s.ID = 42
					return nil
				},
			}
			uc := NewTaxonomyUsecase(repo)

			sub, err := uc.CreateSubcategory(context.Background(), 1, tt.categoryID, "Coffee")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, created, "repository create must not run")
				return
			}
			require.NoError(t, err)
			assert.True(t, created)
			assert.Equal(t, tt.categoryID, sub.CategoryID)
			assert.EqualValues(t, 1, sub.UserID)
		})
	}
}
