// Package handler provides the HTTP handlers for the inventory feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pantry_backend/internal/api"
	"pantry_backend/internal/feature/inventory/domain/entity"
	"pantry_backend/internal/feature/inventory/transport/http/dto"
	"pantry_backend/internal/feature/inventory/usecase"
	jwtmw "pantry_backend/internal/platform/jwt"
)

// dateLayout is the wire format for item dates.
const dateLayout = "2006-01-02"

// ItemUsecase defines the item management usecases, including the
// zero-quantity relocation machine.
type ItemUsecase interface {
	CreateItem(ctx context.Context, item *entity.Item) error
	// UpdateItem is the full-update path; it trusts the supplied location.
	UpdateItem(ctx context.Context, userID uint, item *entity.Item) error
	// SetQuantity is the quantity-only path; it runs the placement machine.
	SetQuantity(ctx context.Context, userID, itemID uint, quantity int, explicitLocationID *uint) error
	DeleteItem(ctx context.Context, userID, id uint) error
	ListGrouped(ctx context.Context, userID uint) ([]usecase.StorageAreaGroup, error)
}

// ItemHandler handles HTTP requests for items.
type ItemHandler struct {
	uc ItemUsecase
}

// NewItemHandler creates a new ItemHandler instance.
func NewItemHandler(uc ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// parseDate parses an optional YYYY-MM-DD string.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List handles GET /items, returning the inventory grouped by storage area
// and location with the sentinel group last.
func (h *ItemHandler) List(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	groups, err := h.uc.ListGrouped(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list items failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}

	out := make([]dto.StorageAreaGroupRes, 0, len(groups))
	for _, g := range groups {
		area := dto.StorageAreaGroupRes{StorageArea: g.StorageArea}
		for _, lg := range g.Locations {
			loc := dto.LocationGroupRes{Location: lg.Location, Items: make([]dto.ItemRes, 0, len(lg.Items))}
			for _, it := range lg.Items {
				var expiry *string
				if it.ExpiryDate != nil {
					s := it.ExpiryDate.UTC().Format(dateLayout)
					expiry = &s
				}
				loc.Items = append(loc.Items, dto.ItemRes{
					ID:         it.ID,
					ItemName:   it.Name,
					Quantity:   it.Quantity,
					DateAdded:  it.DateAdded.UTC().Format(dateLayout),
					ExpiryDate: expiry,
					Barcode:    it.Barcode,
				})
			}
			area.Locations = append(area.Locations, loc)
		}
		out = append(out, area)
	}

	c.JSON(http.StatusOK, out)
}

// Create handles POST /items.
func (h *ItemHandler) Create(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	var req dto.CreateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	dateAdded, err := time.Parse(dateLayout, req.DateAdded)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date_added"})
		return
	}
	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid expiry_date"})
		return
	}

	item := &entity.Item{
		Name:          req.ItemName,
		Quantity:      *req.Quantity,
		DateAdded:     dateAdded,
		ExpiryDate:    expiry,
		Barcode:       req.Barcode,
		StorageAreaID: req.StorageAreaID,
		LocationID:    req.LocationID,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		UserID:        userID,
	}
	if err := h.uc.CreateItem(c.Request.Context(), item); err != nil {
		if errors.Is(err, entity.ErrNegativeQuantity) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("create item failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Update handles PUT /items. The presence of item_name selects the
// full-update form; its absence selects the quantity-only form that drives
// the placement state machine.
func (h *ItemHandler) Update(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	var req dto.UpdateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	var err error
	if req.ItemName != nil {
		err = h.fullUpdate(c, userID, &req)
	} else {
		err = h.uc.SetQuantity(c.Request.Context(), userID, req.ID, *req.Quantity, req.LocationID)
	}

	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrItemNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Item not found"})
		case errors.Is(err, entity.ErrNegativeQuantity),
			errors.Is(err, entity.ErrRelocationRequired),
			errors.Is(err, errBadDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("update item failed", "user_id", userID, "item_id", req.ID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// errBadDate marks date parse failures inside the full-update form.
var errBadDate = errors.New("invalid date format, want YYYY-MM-DD")

// fullUpdate builds the entity for the full-update path.
// The full form requires the fields the edit dialog always sends.
func (h *ItemHandler) fullUpdate(c *gin.Context, userID uint, req *dto.UpdateItemReq) error {
	if req.DateAdded == nil || req.StorageAreaID == nil {
		return errBadDate
	}
	dateAdded, err := time.Parse(dateLayout, *req.DateAdded)
	if err != nil {
		return errBadDate
	}
	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		return errBadDate
	}

	item := &entity.Item{
		ID:            req.ID,
		Name:          *req.ItemName,
		Quantity:      *req.Quantity,
		DateAdded:     dateAdded,
		ExpiryDate:    expiry,
		Barcode:       req.Barcode,
		StorageAreaID: *req.StorageAreaID,
		LocationID:    req.LocationID,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		UserID:        userID,
	}
	return h.uc.UpdateItem(c.Request.Context(), userID, item)
}

// Delete handles DELETE /items/:id.
func (h *ItemHandler) Delete(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.uc.DeleteItem(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Item not found"})
			return
		}
		slog.Error("delete item failed", "user_id", userID, "item_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.Status(http.StatusNoContent)
}
