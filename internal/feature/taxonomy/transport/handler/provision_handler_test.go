package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"pantry_backend/internal/feature/taxonomy/usecase"
	jwtmw "pantry_backend/internal/platform/jwt"
)

// mockProvisionUsecase is a function-field mock of the ProvisionUsecase interface.
type mockProvisionUsecase struct {
	ProvisionFunc func(ctx context.Context, userID uint) error
}

func (m *mockProvisionUsecase) Provision(ctx context.Context, userID uint) error {
	return m.ProvisionFunc(ctx, userID)
}

func TestProvisionHandler_Provision(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		ctxUserID      *uint
		provisionFunc  func(ctx context.Context, userID uint) error
		wantUserID     uint
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: user id from body",
			body: `{"user_id": 7}`,
			provisionFunc: func(ctx context.Context, userID uint) error {
				return nil
			},
			wantUserID:     7,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Taxonomy populated successfully"}`,
		},
		{
			name:      "success: user id from token when body omits it",
			body:      `{}`,
			ctxUserID: uintPtr(12),
			provisionFunc: func(ctx context.Context, userID uint) error {
				return nil
			},
			wantUserID:     12,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Taxonomy populated successfully"}`,
		},
		{
			name:           "failure: no body user id and no token",
			body:           `{}`,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"unauthorized"}`,
		},
		{
			name: "failure: unknown user",
			body: `{"user_id": 9999}`,
			provisionFunc: func(ctx context.Context, userID uint) error {
				return usecase.ErrUserNotFound
			},
			wantUserID:     9999,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"User not found"}`,
		},
		{
			name: "failure: store error",
			body: `{"user_id": 7}`,
			provisionFunc: func(ctx context.Context, userID uint) error {
				return errors.New("db down")
			},
			wantUserID:     7,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to populate taxonomy"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotUserID uint
			mockUC := &mockProvisionUsecase{
				ProvisionFunc: func(ctx context.Context, userID uint) error {
					gotUserID = userID
					if tt.provisionFunc != nil {
						return tt.provisionFunc(ctx, userID)
					}
					return nil
				},
			}
			h := NewProvisionHandler(mockUC)

			router := gin.New()
			router.POST("/taxonomy/provision", func(c *gin.Context) {
				if tt.ctxUserID != nil {
					c.Set(jwtmw.ContextUserID, *tt.ctxUserID)
				}
				h.Provision(c)
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/taxonomy/provision", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			if tt.wantUserID != 0 {
				assert.Equal(t, tt.wantUserID, gotUserID)
			}
		})
	}
}

func uintPtr(v uint) *uint { return &v }
