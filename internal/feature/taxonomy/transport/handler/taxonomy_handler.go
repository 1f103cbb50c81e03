package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pantry_backend/internal/api"
	"pantry_backend/internal/feature/taxonomy/domain/entity"
	"pantry_backend/internal/feature/taxonomy/transport/http/dto"
	"pantry_backend/internal/feature/taxonomy/usecase"
	jwtmw "pantry_backend/internal/platform/jwt"
)

// TaxonomyUsecase defines the category/subcategory/tag management usecases.
type TaxonomyUsecase interface {
	ListCategories(ctx context.Context, userID uint) ([]entity.Category, error)
	CreateCategory(ctx context.Context, userID uint, name string) (*entity.Category, error)
	RenameCategory(ctx context.Context, userID, id uint, name string) (*entity.Category, error)
	DeleteCategory(ctx context.Context, userID, id uint) error

	ListSubcategories(ctx context.Context, userID uint, categoryID *uint) ([]entity.Subcategory, error)
	CreateSubcategory(ctx context.Context, userID, categoryID uint, name string) (*entity.Subcategory, error)
	RenameSubcategory(ctx context.Context, userID, id uint, name string) (*entity.Subcategory, error)
	DeleteSubcategory(ctx context.Context, userID, id uint) error

	ListTags(ctx context.Context, userID uint) ([]entity.Tag, error)
	CreateTag(ctx context.Context, userID uint, name string) (*entity.Tag, error)
	DeleteTag(ctx context.Context, userID, id uint) error
}

// TaxonomyHandler handles HTTP requests for category, subcategory and tag
// management.
type TaxonomyHandler struct {
	uc TaxonomyUsecase
}

// NewTaxonomyHandler creates a new TaxonomyHandler instance.
func NewTaxonomyHandler(uc TaxonomyUsecase) *TaxonomyHandler {
	return &TaxonomyHandler{uc: uc}
}

// notFound maps the taxonomy not-found sentinels to a 404 with a generic
// message; ownership violations look identical to missing rows.
func notFound(err error) (string, bool) {
	switch {
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return "Category not found", true
	case errors.Is(err, usecase.ErrSubcategoryNotFound):
		return "Subcategory not found", true
	case errors.Is(err, usecase.ErrTagNotFound):
		return "Tag not found", true
	}
	return "", false
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ListCategories handles GET /categories.
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	cats, err := h.uc.ListCategories(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list categories failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	out := make([]dto.CategoryRes, 0, len(cats))
	for _, cat := range cats {
		out = append(out, dto.CategoryRes{ID: cat.ID, Name: cat.Name})
	}
	c.JSON(http.StatusOK, out)
}

// CreateCategory handles POST /categories.
func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Name is required"})
		return
	}
	cat, err := h.uc.CreateCategory(c.Request.Context(), userID, req.Name)
	if err != nil {
		slog.Error("create category failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, dto.CategoryRes{ID: cat.ID, Name: cat.Name})
}

// RenameCategory handles PUT /categories/:id.
func (h *TaxonomyHandler) RenameCategory(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Name is required"})
		return
	}
	cat, err := h.uc.RenameCategory(c.Request.Context(), userID, id, req.Name)
	if err != nil {
		if msg, ok := notFound(err); ok {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: msg})
			return
		}
		slog.Error("rename category failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, dto.CategoryRes{ID: cat.ID, Name: cat.Name})
}

// DeleteCategory handles DELETE /categories/:id.
func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteCategory(c.Request.Context(), userID, id); err != nil {
		if msg, ok := notFound(err); ok {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: msg})
			return
		}
		slog.Error("delete category failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Category deleted successfully"})
}

// ListSubcategories handles GET /subcategories with an optional category_id
// query filter.
func (h *TaxonomyHandler) ListSubcategories(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)

	var categoryID *uint
	if s := c.Query("category_id"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid category_id"})
			return
		}
		id := uint(v)
		categoryID = &id
	}

	subs, err := h.uc.ListSubcategories(c.Request.Context(), userID, categoryID)
	if err != nil {
		slog.Error("list subcategories failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	out := make([]dto.SubcategoryRes, 0, len(subs))
	for _, s := range subs {
		out = append(out, dto.SubcategoryRes{ID: s.ID, Name: s.Name, CategoryID: s.CategoryID})
	}
	c.JSON(http.StatusOK, out)
}

// CreateSubcategory handles POST /subcategories.
func (h *TaxonomyHandler) CreateSubcategory(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	var req dto.SubcategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Name and category_id are required"})
		return
	}
	s, err := h.uc.CreateSubcategory(c.Request.Context(), userID, req.CategoryID, req.Name)
	if err != nil {
		if msg, ok := notFound(err); ok {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: msg})
			return
		}
		slog.Error("create subcategory failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, dto.SubcategoryRes{ID: s.ID, Name: s.Name, CategoryID: s.CategoryID})
}

// RenameSubcategory handles PUT /subcategories/:id.
func (h *TaxonomyHandler) RenameSubcategory(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SubcategoryRenameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Name is required"})
		return
	}
	s, err := h.uc.RenameSubcategory(c.Request.Context(), userID, id, req.Name)
	if err != nil {
		if msg, ok := notFound(err); ok {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: msg})
			return
		}
		slog.Error("rename subcategory failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, dto.SubcategoryRes{ID: s.ID, Name: s.Name, CategoryID: s.CategoryID})
}

// DeleteSubcategory handles DELETE /subcategories/:id.
func (h *TaxonomyHandler) DeleteSubcategory(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteSubcategory(c.Request.Context(), userID, id); err != nil {
		if msg, ok := notFound(err); ok {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: msg})
			return
		}
		slog.Error("delete subcategory failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Subcategory deleted successfully"})
}

// ListTags handles GET /tags.
func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	tags, err := h.uc.ListTags(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list tags failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	out := make([]dto.TagRes, 0, len(tags))
	for _, t := range tags {
		out = append(out, dto.TagRes{ID: t.ID, Name: t.Name})
	}
	c.JSON(http.StatusOK, out)
}

// CreateTag handles POST /tags.
func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	var req dto.TagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Name is required"})
		return
	}
	t, err := h.uc.CreateTag(c.Request.Context(), userID, req.Name)
	if err != nil {
		slog.Error("create tag failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, dto.TagRes{ID: t.ID, Name: t.Name})
}

// DeleteTag handles DELETE /tags/:id.
func (h *TaxonomyHandler) DeleteTag(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteTag(c.Request.Context(), userID, id); err != nil {
		if msg, ok := notFound(err); ok {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: msg})
			return
		}
		slog.Error("delete tag failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Tag deleted successfully"})
}
