// Package usecase implements the business logic for the taxonomy feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a provisioning target user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrCategoryNotFound is returned when a category does not exist or is
	// owned by another user. The two cases are deliberately indistinguishable.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrSubcategoryNotFound is returned when a subcategory does not exist or
	// is owned by another user.
	ErrSubcategoryNotFound = errors.New("subcategory not found")

	// ErrTagNotFound is returned when a tag does not exist or is owned by
	// another user.
	ErrTagNotFound = errors.New("tag not found")

	// ErrDuplicateCategory is returned by the store when a category insert
	// violates the per-user name uniqueness. The provisioner treats it as
	// losing a provisioning race.
	ErrDuplicateCategory = errors.New("category already exists")
)
