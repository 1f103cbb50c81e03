// Package dto defines data transfer objects for the taxonomy feature's HTTP transport layer.
package dto

// ProvisionReq represents the request body for the /taxonomy/provision
// endpoint. The user ID is optional: a freshly registered client sends it
// explicitly, an authenticated one may omit it.
type ProvisionReq struct {
	UserID uint `json:"user_id"`
}

// CategoryReq represents the body for creating or renaming a category.
type CategoryReq struct {
	Name string `json:"name" binding:"required"`
}

// CategoryRes represents a category in responses.
type CategoryRes struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SubcategoryReq represents the body for creating a subcategory.
type SubcategoryReq struct {
	Name       string `json:"name" binding:"required"`
	CategoryID uint   `json:"category_id" binding:"required"`
}

// SubcategoryRenameReq represents the body for renaming a subcategory.
type SubcategoryRenameReq struct {
	Name string `json:"name" binding:"required"`
}

// SubcategoryRes represents a subcategory in responses.
type SubcategoryRes struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
}

// TagReq represents the body for creating a tag.
type TagReq struct {
	Name string `json:"name" binding:"required"`
}

// TagRes represents a tag in responses.
type TagRes struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
