// Package entity defines the domain entities for the taxonomy feature.
package entity

// Category is a top-level grouping for items, owned by one user.
// The composite unique index on (user_id, name) backs the provisioner's
// concurrency guard: the loser of two simultaneous first-time provisions
// hits a duplicate key and rolls back.
type Category struct {
	// ID is the unique identifier for the category.
	ID uint `gorm:"primaryKey"`

	// Name is the category's display name, unique per user.
	Name string `gorm:"size:255;not null;uniqueIndex:idx_categories_user_name"`

	// UserID references the owning user.
	UserID uint `gorm:"not null;index;uniqueIndex:idx_categories_user_name"`
}

// Subcategory is a second-level grouping under a category.
// Deleting its category cascades to it.
type Subcategory struct {
	// ID is the unique identifier for the subcategory.
	ID uint `gorm:"primaryKey"`

	// Name is the subcategory's display name.
	Name string `gorm:"size:255;not null"`

	// CategoryID references the parent category. Category deletion removes
	// its subcategories in the same transaction.
	CategoryID uint `gorm:"not null;index"`

	// UserID references the owning user.
	UserID uint `gorm:"not null;index"`
}

// Tag is an orthogonal label with an independent lifecycle.
type Tag struct {
	// ID is the unique identifier for the tag.
	ID uint `gorm:"primaryKey"`

	// Name is the tag's display name.
	Name string `gorm:"size:255;not null"`

	// UserID references the owning user.
	UserID uint `gorm:"not null;index"`
}
