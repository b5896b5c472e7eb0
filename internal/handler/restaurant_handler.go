package handler

import (
	"net/http"
	"strconv"

	"github.com/bookatable/reservation-service/internal/dto"
	"github.com/bookatable/reservation-service/internal/repository"
	"github.com/bookatable/reservation-service/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type RestaurantHandler struct {
	svc service.RestaurantService
}

func NewRestaurantHandler(svc service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{svc: svc}
}

func (h *RestaurantHandler) RegisterRoutes(e *echo.Echo) {
	restaurants := e.Group("/api/v1/restaurants")
	restaurants.GET("", h.ListRestaurants)
	restaurants.GET("/:id", h.GetRestaurant)
}

func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	filters := repository.RestaurantFilters{
		Search:  c.QueryParam("search"),
		City:    c.QueryParam("city"),
		Cuisine: c.QueryParam("cuisine"),
		Page:    intQueryParam(c, "page", 1),
		Limit:   intQueryParam(c, "limit", 10),
	}

	restaurants, total, err := h.svc.List(c.Request().Context(), filters)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	data := make([]dto.RestaurantResponse, len(restaurants))
	for i, r := range restaurants {
		data[i] = dto.ToRestaurantResponse(&r)
	}

	return c.JSON(http.StatusOK, dto.PaginatedResponse[dto.RestaurantResponse]{
		Data:  data,
		Total: total,
		Page:  filters.Page,
		Limit: filters.Limit,
	})
}

func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid restaurant id")
	}

	restaurant, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRestaurantResponse(restaurant))
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	v := c.QueryParam(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
