// Package ownership centralizes the owner check applied to every query that
// reads or mutates user-owned rows. Handlers surface violations as "not
// found" rather than "forbidden" so they do not leak resource existence.
package ownership

import "gorm.io/gorm"

// Owned returns a GORM scope that restricts a query to rows owned by userID.
// Every adapter read and write on owned tables goes through this scope
// instead of re-deriving the predicate per call site.
func Owned(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
