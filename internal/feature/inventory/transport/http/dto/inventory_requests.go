// Package dto defines data transfer objects for the inventory feature's HTTP transport layer.
package dto

// StorageAreaReq represents the body for creating or renaming a storage area.
type StorageAreaReq struct {
	Name string `json:"name" binding:"required"`
}

// StorageAreaRes represents a storage area in responses.
type StorageAreaRes struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// LocationReq represents the body for creating or updating a location.
type LocationReq struct {
	LocationName   string `json:"location_name" binding:"required"`
	StorageAreaIDs []uint `json:"storage_area_ids"`
}

// LocationRes represents a location with its storage-area memberships.
type LocationRes struct {
	ID             uint   `json:"id"`
	LocationName   string `json:"location_name"`
	StorageAreaIDs []uint `json:"storage_area_ids"`
}

// CreateItemReq represents the body for creating an item.
// Dates use the YYYY-MM-DD format.
type CreateItemReq struct {
	ItemName      string  `json:"item_name" binding:"required"`
	Quantity      *int    `json:"quantity" binding:"required"`
	DateAdded     string  `json:"date_added" binding:"required"`
	ExpiryDate    *string `json:"expiry_date"`
	Barcode       *string `json:"barcode"`
	StorageAreaID uint    `json:"storage_area_id" binding:"required"`
	LocationID    *uint   `json:"location_id"`
	CategoryID    *uint   `json:"category_id"`
	SubcategoryID *uint   `json:"subcategory_id"`
}

// UpdateItemReq represents the body for PUT /items. The presence of
// item_name is the dispatch discriminator: with it this is the full-update
// form, without it the quantity-only form that drives the placement state
// machine.
type UpdateItemReq struct {
	ID            uint    `json:"id" binding:"required"`
	ItemName      *string `json:"item_name"`
	Quantity      *int    `json:"quantity" binding:"required"`
	DateAdded     *string `json:"date_added"`
	ExpiryDate    *string `json:"expiry_date"`
	Barcode       *string `json:"barcode"`
	StorageAreaID *uint   `json:"storage_area_id"`
	LocationID    *uint   `json:"location_id"`
	CategoryID    *uint   `json:"category_id"`
	SubcategoryID *uint   `json:"subcategory_id"`
}

// ItemRes represents an item inside the grouped inventory listing.
type ItemRes struct {
	ID         uint    `json:"id"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	DateAdded  string  `json:"date_added"`
	ExpiryDate *string `json:"expiry_date"`
	Barcode    *string `json:"barcode"`
}

// LocationGroupRes is a location bucket in the grouped inventory listing.
type LocationGroupRes struct {
	Location string    `json:"location"`
	Items    []ItemRes `json:"items"`
}

// StorageAreaGroupRes is a storage-area bucket in the grouped inventory listing.
type StorageAreaGroupRes struct {
	StorageArea string             `json:"storage_area"`
	Locations   []LocationGroupRes `json:"locations"`
}
