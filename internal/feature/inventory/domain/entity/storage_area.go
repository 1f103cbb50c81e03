// Package entity defines the domain entities for the inventory feature.
package entity

// StorageArea is a physical container such as "Freezer" or "Garage shelf".
type StorageArea struct {
	// ID is the unique identifier for the storage area.
	ID uint `gorm:"primaryKey"`

	// Name is the storage area's display name.
	Name string `gorm:"size:255;not null"`

	// UserID references the owning user.
	UserID uint `gorm:"not null;index"`
}

// SentinelLocationName is the reserved location name that represents "zero
// quantity, not physically stored anywhere". Exactly one location with this
// name exists per user, created lazily on first need.
const SentinelLocationName = "Not in Storage"

// Location is a sub-placement within one or more storage areas.
type Location struct {
	// ID is the unique identifier for the location.
	ID uint `gorm:"primaryKey"`

	// Name is the location's display name, unique per user. The per-user
	// uniqueness makes sentinel lookup-or-create race-safe.
	Name string `gorm:"column:location_name;size:255;not null;uniqueIndex:idx_locations_user_name"`

	// UserID references the owning user.
	UserID uint `gorm:"not null;index;uniqueIndex:idx_locations_user_name"`

	// StorageAreas are the storage areas this location belongs to.
	StorageAreas []StorageArea `gorm:"many2many:storage_area_locations"`
}

// TableName keeps the original schema's table name.
func (Location) TableName() string { return "item_locations" }

// IsSentinel reports whether this is the user's "Not in Storage" location.
func (l *Location) IsSentinel() bool { return l.Name == SentinelLocationName }
