package entity

import (
	"time"

	taxentity "pantry_backend/internal/feature/taxonomy/domain/entity"
)

// Item is a stored household item with a quantity and an optional placement.
//
// The pair (LocationID, OriginalLocationID) encodes the placement state
// machine: a positive-quantity item has OriginalLocationID nil; a
// zero-quantity item sits in the user's sentinel location with
// OriginalLocationID remembering where it should return to. The pair mutates
// only through the quantity-update path, never through the full-update path.
type Item struct {
	// ID is the unique identifier for the item.
	ID uint `gorm:"primaryKey"`

	// Name is the item's display name.
	Name string `gorm:"column:item_name;size:255;not null"`

	// Quantity is the stored count. Never negative.
	Quantity int `gorm:"not null;default:0"`

	// DateAdded is the day the item entered storage.
	DateAdded time.Time `gorm:"not null"`

	// ExpiryDate is the optional best-before date.
	ExpiryDate *time.Time

	// Barcode is the optional scanned product code.
	Barcode *string `gorm:"size:64"`

	// StorageAreaID references the containing storage area.
	StorageAreaID uint `gorm:"not null;index"`

	// LocationID references the item's current location, nil when ungrouped.
	LocationID *uint `gorm:"index"`

	// OriginalLocationID remembers the pre-zero location while the item sits
	// in the sentinel. Nil whenever Quantity > 0.
	OriginalLocationID *uint

	// CategoryID optionally references a taxonomy category.
	CategoryID *uint `gorm:"index"`

	// SubcategoryID optionally references a taxonomy subcategory.
	SubcategoryID *uint `gorm:"index"`

	// Tags are the item's labels.
	Tags []taxentity.Tag `gorm:"many2many:item_tags"`

	// UserID references the owning user.
	UserID uint `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Placement decodes the item's current placement state. Quantity zero means
// the item is (or is about to be treated as) not in storage.
func (i *Item) Placement() Placement {
	if i.Quantity == 0 {
		return NotInStorage{RememberedLocationID: i.OriginalLocationID}
	}
	return Placed{LocationID: i.LocationID}
}
