package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pantry_backend/internal/api"
	"pantry_backend/internal/feature/inventory/domain/entity"
	"pantry_backend/internal/feature/inventory/transport/http/dto"
	"pantry_backend/internal/feature/inventory/usecase"
	jwtmw "pantry_backend/internal/platform/jwt"
)

// StorageAreaUsecase defines the storage area management usecases.
type StorageAreaUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.StorageArea, error)
	Create(ctx context.Context, userID uint, name string) (*entity.StorageArea, error)
	Rename(ctx context.Context, userID, id uint, name string) (*entity.StorageArea, error)
	Delete(ctx context.Context, userID, id uint) error
}

// StorageAreaHandler handles HTTP requests for storage areas.
type StorageAreaHandler struct {
	uc StorageAreaUsecase
}

// NewStorageAreaHandler creates a new StorageAreaHandler instance.
func NewStorageAreaHandler(uc StorageAreaUsecase) *StorageAreaHandler {
	return &StorageAreaHandler{uc: uc}
}

// List handles GET /storage-areas.
func (h *StorageAreaHandler) List(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	areas, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list storage areas failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	out := make([]dto.StorageAreaRes, 0, len(areas))
	for _, a := range areas {
		out = append(out, dto.StorageAreaRes{ID: a.ID, Name: a.Name})
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /storage-areas.
func (h *StorageAreaHandler) Create(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	var req dto.StorageAreaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	a, err := h.uc.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		slog.Error("create storage area failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, dto.StorageAreaRes{ID: a.ID, Name: a.Name})
}

// Update handles PUT /storage-areas/:id.
func (h *StorageAreaHandler) Update(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}
	var req dto.StorageAreaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	a, err := h.uc.Rename(c.Request.Context(), userID, uint(id), req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrStorageAreaNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Storage area not found"})
			return
		}
		slog.Error("rename storage area failed", "user_id", userID, "storage_area_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, dto.StorageAreaRes{ID: a.ID, Name: a.Name})
}

// Delete handles DELETE /storage-areas/:id.
func (h *StorageAreaHandler) Delete(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, usecase.ErrStorageAreaNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Storage area not found"})
			return
		}
		slog.Error("delete storage area failed", "user_id", userID, "storage_area_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.Status(http.StatusNoContent)
}
