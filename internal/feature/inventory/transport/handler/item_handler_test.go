package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry_backend/internal/feature/inventory/domain/entity"
	"pantry_backend/internal/feature/inventory/usecase"
	jwtmw "pantry_backend/internal/platform/jwt"
)

// mockItemUsecase is a function-field mock of the ItemUsecase interface.
type mockItemUsecase struct {
	CreateItemFunc  func(ctx context.Context, item *entity.Item) error
	UpdateItemFunc  func(ctx context.Context, userID uint, item *entity.Item) error
	SetQuantityFunc func(ctx context.Context, userID, itemID uint, quantity int, explicitLocationID *uint) error
	DeleteItemFunc  func(ctx context.Context, userID, id uint) error
	ListGroupedFunc func(ctx context.Context, userID uint) ([]usecase.StorageAreaGroup, error)
}

func (m *mockItemUsecase) CreateItem(ctx context.Context, item *entity.Item) error {
	return m.CreateItemFunc(ctx, item)
}

func (m *mockItemUsecase) UpdateItem(ctx context.Context, userID uint, item *entity.Item) error {
	return m.UpdateItemFunc(ctx, userID, item)
}

func (m *mockItemUsecase) SetQuantity(ctx context.Context, userID, itemID uint, quantity int, explicitLocationID *uint) error {
	return m.SetQuantityFunc(ctx, userID, itemID, quantity, explicitLocationID)
}

func (m *mockItemUsecase) DeleteItem(ctx context.Context, userID, id uint) error {
	return m.DeleteItemFunc(ctx, userID, id)
}

func (m *mockItemUsecase) ListGrouped(ctx context.Context, userID uint) ([]usecase.StorageAreaGroup, error) {
	return m.ListGroupedFunc(ctx, userID)
}

// serve runs a single request through a router that fakes the auth middleware.
func serve(h *ItemHandler, method, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, uint(1))
	})
	router.GET("/items", h.List)
	router.POST("/items", h.Create)
	router.PUT("/items", h.Update)
	router.DELETE("/items/:id", h.Delete)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

// TestItemHandler_Update_Dispatch verifies the PUT form selection: item_name
// present routes to the full update, absent routes to the quantity machine.
func TestItemHandler_Update_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("quantity-only form calls SetQuantity", func(t *testing.T) {
		t.Parallel()

		var gotQuantity int
		var gotExplicit *uint
		called := ""
		mockUC := &mockItemUsecase{
			SetQuantityFunc: func(ctx context.Context, userID, itemID uint, quantity int, explicitLocationID *uint) error {
				called = "SetQuantity"
				gotQuantity = quantity
				gotExplicit = explicitLocationID
				return nil
			},
			UpdateItemFunc: func(ctx context.Context, userID uint, item *entity.Item) error {
				called = "UpdateItem"
				return nil
			},
		}
		h := NewItemHandler(mockUC)

		w := serve(h, http.MethodPut, "/items", `{"id": 5, "quantity": 0}`)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "SetQuantity", called)
		assert.Equal(t, 0, gotQuantity)
		assert.Nil(t, gotExplicit)
	})

	t.Run("quantity form forwards explicit location", func(t *testing.T) {
		t.Parallel()

		var gotExplicit *uint
		mockUC := &mockItemUsecase{
			SetQuantityFunc: func(ctx context.Context, userID, itemID uint, quantity int, explicitLocationID *uint) error {
				gotExplicit = explicitLocationID
				return nil
			},
		}
		h := NewItemHandler(mockUC)

		w := serve(h, http.MethodPut, "/items", `{"id": 5, "quantity": 2, "location_id": 33}`)

		assert.Equal(t, http.StatusNoContent, w.Code)
		require.NotNil(t, gotExplicit)
		assert.EqualValues(t, 33, *gotExplicit)
	})

	t.Run("full form calls UpdateItem", func(t *testing.T) {
		t.Parallel()

		var gotItem *entity.Item
		called := ""
		mockUC := &mockItemUsecase{
			UpdateItemFunc: func(ctx context.Context, userID uint, item *entity.Item) error {
				called = "UpdateItem"
				gotItem = item
				return nil
			},
			SetQuantityFunc: func(ctx context.Context, userID, itemID uint, quantity int, explicitLocationID *uint) error {
				called = "SetQuantity"
				return nil
			},
		}
		h := NewItemHandler(mockUC)

		body := `{"id": 5, "item_name": "Rice", "quantity": 4, "date_added": "2025-03-01", "storage_area_id": 2, "location_id": 33}`
		w := serve(h, http.MethodPut, "/items", body)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "UpdateItem", called)
		require.NotNil(t, gotItem)
		assert.Equal(t, "Rice", gotItem.Name)
		assert.Equal(t, 4, gotItem.Quantity)
		assert.EqualValues(t, 2, gotItem.StorageAreaID)
		require.NotNil(t, gotItem.LocationID)
		assert.EqualValues(t, 33, *gotItem.LocationID)
		assert.Nil(t, gotItem.OriginalLocationID, "the full form never carries placement memory")
	})

	t.Run("missing quantity is rejected", func(t *testing.T) {
		t.Parallel()

		h := NewItemHandler(&mockItemUsecase{})
		w := serve(h, http.MethodPut, "/items", `{"id": 5}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestItemHandler_Update_ErrorMapping verifies domain errors reach the client
// with the right status codes.
func TestItemHandler_Update_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"item not found", usecase.ErrItemNotFound, http.StatusNotFound},
		{"negative quantity", entity.ErrNegativeQuantity, http.StatusBadRequest},
		{"relocation required", entity.ErrRelocationRequired, http.StatusBadRequest},
		{"storage failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockUC := &mockItemUsecase{
				SetQuantityFunc: func(ctx context.Context, userID, itemID uint, quantity int, explicitLocationID *uint) error {
					return tt.err
				},
			}
			h := NewItemHandler(mockUC)

			w := serve(h, http.MethodPut, "/items", `{"id": 5, "quantity": 1}`)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestItemHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("success with parsed dates", func(t *testing.T) {
		t.Parallel()

		var gotItem *entity.Item
		mockUC := &mockItemUsecase{
			CreateItemFunc: func(ctx context.Context, item *entity.Item) error {
				gotItem = item
				return nil
			},
		}
		h := NewItemHandler(mockUC)

		body := `{"item_name": "Rice", "quantity": 5, "date_added": "2025-03-01", "expiry_date": "2026-03-01", "storage_area_id": 2}`
		w := serve(h, http.MethodPost, "/items", body)

		assert.Equal(t, http.StatusNoContent, w.Code)
		require.NotNil(t, gotItem)
		assert.EqualValues(t, 1, gotItem.UserID, "owner comes from the token, not the body")
		assert.Equal(t, "2025-03-01", gotItem.DateAdded.Format("2006-01-02"))
		require.NotNil(t, gotItem.ExpiryDate)
		assert.Equal(t, "2026-03-01", gotItem.ExpiryDate.Format("2006-01-02"))
	})

	t.Run("bad date rejected", func(t *testing.T) {
		t.Parallel()

		h := NewItemHandler(&mockItemUsecase{})
		body := `{"item_name": "Rice", "quantity": 5, "date_added": "03/01/2025", "storage_area_id": 2}`
		w := serve(h, http.MethodPost, "/items", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestItemHandler_List(t *testing.T) {
	t.Parallel()

	sentinel := entity.SentinelLocationName
	mockUC := &mockItemUsecase{
		ListGroupedFunc: func(ctx context.Context, userID uint) ([]usecase.StorageAreaGroup, error) {
			return []usecase.StorageAreaGroup{
				{
					StorageArea: "Pantry",
					Locations: []usecase.LocationGroup{
						{Location: "Shelf A", Items: []usecase.ItemRow{
							{ID: 3, Name: "Rice", Quantity: 5, DateAdded: mustDate("2025-03-01")},
						}},
						{Location: sentinel, Items: []usecase.ItemRow{
							{ID: 2, Name: "Old Flour", Quantity: 0, DateAdded: mustDate("2025-01-15")},
						}},
					},
				},
			}, nil
		},
	}
	h := NewItemHandler(mockUC)

	w := serve(h, http.MethodGet, "/items", "")

	assert.Equal(t, http.StatusOK, w.Code)
	expected := `[
		{
			"storage_area": "Pantry",
			"locations": [
				{"location": "Shelf A", "items": [
					{"id": 3, "item_name": "Rice", "quantity": 5, "date_added": "2025-03-01", "expiry_date": null, "barcode": null}
				]},
				{"location": "Not in Storage", "items": [
					{"id": 2, "item_name": "Old Flour", "quantity": 0, "date_added": "2025-01-15", "expiry_date": null, "barcode": null}
				]}
			]
		}
	]`
	assert.JSONEq(t, expected, w.Body.String())
}

func TestItemHandler_Delete(t *testing.T) {
	t.Parallel()

	mockUC := &mockItemUsecase{
		DeleteItemFunc: func(ctx context.Context, userID, id uint) error {
			if id == 404 {
				return usecase.ErrItemNotFound
			}
			return nil
		},
	}
	h := NewItemHandler(mockUC)

	assert.Equal(t, http.StatusNoContent, serve(h, http.MethodDelete, "/items/5", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodDelete, "/items/404", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodDelete, "/items/abc", "").Code)
}

func mustDate(s string) (t time.Time) {
	t, _ = time.Parse("2006-01-02", s)
	return t
}
