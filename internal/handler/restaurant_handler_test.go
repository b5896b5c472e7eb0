package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bookatable/reservation-service/internal/dto"
	"github.com/bookatable/reservation-service/internal/models"
	"github.com/bookatable/reservation-service/internal/repository"
	"github.com/bookatable/reservation-service/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type mockRestaurantService struct {
	getFn  func(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	listFn func(ctx context.Context, filters repository.RestaurantFilters) ([]models.Restaurant, int64, error)
}

func (m *mockRestaurantService) Get(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	return m.getFn(ctx, id)
}
func (m *mockRestaurantService) List(ctx context.Context, filters repository.RestaurantFilters) ([]models.Restaurant, int64, error) {
	return m.listFn(ctx, filters)
}

func TestListRestaurants_Handler_Success(t *testing.T) {
	var captured repository.RestaurantFilters
	svc := &mockRestaurantService{
		listFn: func(ctx context.Context, filters repository.RestaurantFilters) ([]models.Restaurant, int64, error) {
			captured = filters
			return []models.Restaurant{
				{ID: uuid.New(), Name: "Sushi Bar", City: "Gdańsk"},
				{ID: uuid.New(), Name: "Pierogarnia", City: "Gdańsk"},
			}, 2, nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants?city=gdańsk&page=1&limit=20", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRestaurantHandler(svc)
	err := h.ListRestaurants(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gdańsk", captured.City)
	assert.Equal(t, 20, captured.Limit)

	var resp dto.PaginatedResponse[dto.RestaurantResponse]
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestGetRestaurant_Handler_NotFound(t *testing.T) {
	svc := &mockRestaurantService{
		getFn: func(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
			return nil, service.ErrRestaurantNotFound
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	h := NewRestaurantHandler(svc)
	err := h.GetRestaurant(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
