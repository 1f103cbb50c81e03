package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"pantry_backend/internal/feature/auth/domain/entity"
	"pantry_backend/internal/feature/auth/usecase"
	jwtmw "pantry_backend/internal/platform/jwt"
)

// mockAuthUsecase is a function-field mock of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc      func(ctx context.Context, name, email, password string) (uint, error)
	LoginFunc       func(ctx context.Context, email, password string) (string, error)
	CurrentUserFunc func(ctx context.Context, userID uint) (*entity.User, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, name, email, password string) (uint, error) {
	return m.SignupFunc(ctx, name, email, password)
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	return m.LoginFunc(ctx, email, password)
}

func (m *mockAuthUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	return m.CurrentUserFunc(ctx, userID)
}

func TestAuthHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		signupFunc     func(ctx context.Context, name, email, password string) (uint, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns the new user id",
			body: `{"name": "Alice", "email": "alice@example.com", "password": "password123"}`,
			signupFunc: func(ctx context.Context, name, email, password string) (uint, error) {
				return 7, nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"user_id": 7}`,
		},
		{
			name:           "failure: invalid email",
			body:           `{"name": "Alice", "email": "not-an-email", "password": "password123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:           "failure: password below minimum length",
			body:           `{"name": "Alice", "email": "alice@example.com", "password": "short"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name: "failure: duplicate email reads as generic conflict",
			body: `{"name": "Alice", "email": "alice@example.com", "password": "password123"}`,
			signupFunc: func(ctx context.Context, name, email, password string) (uint, error) {
				return 0, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"signup failed"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockUC := &mockAuthUsecase{SignupFunc: tt.signupFunc}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/signup", h.Signup)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/signup", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		loginFunc      func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns a token",
			body: `{"email": "alice@example.com", "password": "password123"}`,
			loginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "signed-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"token":"signed-token"}`,
		},
		{
			name: "failure: bad credentials",
			body: `{"email": "alice@example.com", "password": "wrong"}`,
			loginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrUserNotFound
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"invalid email or password"}`,
		},
		{
			name:           "failure: missing password",
			body:           `{"email": "alice@example.com"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockUC := &mockAuthUsecase{LoginFunc: tt.loginFunc}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/login", h.Login)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	mockUC := &mockAuthUsecase{
		CurrentUserFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
			return &entity.User{ID: userID, Name: "Alice", Email: "alice@example.com"}, nil
		},
	}
	h := NewAuthHandler(mockUC)

	router := gin.New()
	router.GET("/me", func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, uint(7))
		h.Me(c)
	})
	router.GET("/me-anon", h.Me)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": 7, "name": "Alice", "email": "alice@example.com"}`, w.Body.String())

	// Without the middleware-set user ID the handler refuses.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/me-anon", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
