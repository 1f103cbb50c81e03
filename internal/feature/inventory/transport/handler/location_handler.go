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

// LocationUsecase defines the location management usecases.
type LocationUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Location, error)
	Create(ctx context.Context, userID uint, name string, storageAreaIDs []uint) (*entity.Location, error)
	Update(ctx context.Context, userID, id uint, name string, storageAreaIDs []uint) (*entity.Location, error)
	Delete(ctx context.Context, userID, id uint) error
}

// LocationHandler handles HTTP requests for locations.
type LocationHandler struct {
	uc LocationUsecase
}

// NewLocationHandler creates a new LocationHandler instance.
func NewLocationHandler(uc LocationUsecase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

func toLocationRes(loc *entity.Location) dto.LocationRes {
	ids := make([]uint, 0, len(loc.StorageAreas))
	for _, a := range loc.StorageAreas {
		ids = append(ids, a.ID)
	}
	return dto.LocationRes{ID: loc.ID, LocationName: loc.Name, StorageAreaIDs: ids}
}

// List handles GET /locations.
func (h *LocationHandler) List(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	locs, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list locations failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	out := make([]dto.LocationRes, 0, len(locs))
	for i := range locs {
		out = append(out, toLocationRes(&locs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /locations.
func (h *LocationHandler) Create(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	var req dto.LocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	loc, err := h.uc.Create(c.Request.Context(), userID, req.LocationName, req.StorageAreaIDs)
	if err != nil {
		h.mapError(c, userID, err)
		return
	}
	c.JSON(http.StatusCreated, toLocationRes(loc))
}

// Update handles PUT /locations/:id.
func (h *LocationHandler) Update(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}
	var req dto.LocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	loc, err := h.uc.Update(c.Request.Context(), userID, uint(id), req.LocationName, req.StorageAreaIDs)
	if err != nil {
		h.mapError(c, userID, err)
		return
	}
	c.JSON(http.StatusOK, toLocationRes(loc))
}

// Delete handles DELETE /locations/:id.
func (h *LocationHandler) Delete(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		h.mapError(c, userID, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LocationHandler) mapError(c *gin.Context, userID uint, err error) {
	switch {
	case errors.Is(err, usecase.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Location not found"})
	case errors.Is(err, usecase.ErrStorageAreaNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Storage area not found"})
	default:
		slog.Error("location operation failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
	}
}
