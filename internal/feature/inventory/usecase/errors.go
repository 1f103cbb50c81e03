// Package usecase implements the business logic for the inventory feature.
package usecase

import "errors"

var (
	// ErrItemNotFound is returned when an item does not exist or is owned by
	// another user. The two cases are deliberately indistinguishable.
	ErrItemNotFound = errors.New("item not found")

	// ErrStorageAreaNotFound is returned when a storage area does not exist
	// or is owned by another user.
	ErrStorageAreaNotFound = errors.New("storage area not found")

	// ErrLocationNotFound is returned when a location does not exist or is
	// owned by another user.
	ErrLocationNotFound = errors.New("location not found")
)
