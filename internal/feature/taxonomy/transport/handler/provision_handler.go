// Package handler provides the HTTP handlers for the taxonomy feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pantry_backend/internal/api"
	"pantry_backend/internal/feature/taxonomy/transport/http/dto"
	"pantry_backend/internal/feature/taxonomy/usecase"
	jwtmw "pantry_backend/internal/platform/jwt"
)

// ProvisionUsecase defines the taxonomy provisioning usecase.
type ProvisionUsecase interface {
	// Provision seeds the fixed catalog for the user, idempotently.
	Provision(ctx context.Context, userID uint) error
}

// ProvisionHandler handles HTTP requests for taxonomy provisioning.
type ProvisionHandler struct {
	provision ProvisionUsecase
}

// NewProvisionHandler creates a new ProvisionHandler instance.
func NewProvisionHandler(provision ProvisionUsecase) *ProvisionHandler {
	return &ProvisionHandler{provision: provision}
}

// Provision seeds a user's taxonomy. The target user comes from the request
// body (the post-registration flow, where no token exists yet) or, failing
// that, from the authenticated request context.
func (h *ProvisionHandler) Provision(c *gin.Context) {
	var req dto.ProvisionReq
	// A missing or empty body is fine; the authenticated fallback covers it.
	_ = c.ShouldBindJSON(&req)

	userID := req.UserID
	if userID == 0 {
		id, ok := jwtmw.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
			return
		}
		userID = id
	}

	if err := h.provision.Provision(c.Request.Context(), userID); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
			return
		}
		slog.Error("taxonomy provisioning failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to populate taxonomy"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Taxonomy populated successfully"})
}
