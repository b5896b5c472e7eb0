package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/bookatable/reservation-service/internal/admission"
	"github.com/bookatable/reservation-service/internal/dto"
	"github.com/bookatable/reservation-service/internal/lifecycle"
	"github.com/bookatable/reservation-service/internal/models"
	"github.com/bookatable/reservation-service/internal/repository"
	"github.com/bookatable/reservation-service/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) RegisterRoutes(e *echo.Echo) {
	reservations := e.Group("/api/v1/reservations")
	reservations.POST("", h.CreateReservation)
	reservations.DELETE("/cancel", h.CancelByToken)
	reservations.GET("/:id/status", h.GetStatus)
	reservations.PUT("/:id/status", h.UpdateStatus)

	e.GET("/api/v1/restaurants/:id/reservations", h.ListByRestaurant)
}

func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req dto.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid restaurant id")
	}

	reservation, err := h.svc.Create(c.Request().Context(), service.CreateReservationInput{
		Name:         req.Name,
		Email:        req.Email,
		PeopleCount:  req.PeopleCount,
		Date:         date,
		Time:         req.Time,
		RestaurantID: restaurantID,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) GetStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}

	reservation, err := h.svc.FindStatus(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) CancelByToken(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token is required")
	}

	if _, err := h.svc.CancelByToken(c.Request().Context(), token); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.CancelResponse{Message: "reservation has been cancelled"})
}

func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}

	var req dto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reservation, err := h.svc.UpdateStatus(c.Request().Context(), id, models.ReservationStatus(req.Status))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) ListByRestaurant(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid restaurant id")
	}

	filters := repository.ReservationFilters{
		Page:  intQueryParam(c, "page", 1),
		Limit: intQueryParam(c, "limit", 10),
	}
	if s := c.QueryParam("status"); s != "" {
		status := models.ReservationStatus(s)
		if !status.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
		}
		filters.Status = &status
	}
	if d := c.QueryParam("date"); d != "" {
		date, err := time.ParseInLocation("2006-01-02", d, time.UTC)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date filter, expected YYYY-MM-DD")
		}
		filters.Date = &date
	}

	reservations, total, err := h.svc.ListByRestaurant(c.Request().Context(), restaurantID, filters)
	if err != nil {
		return toHTTPError(err)
	}

	data := make([]dto.ReservationResponse, len(reservations))
	for i, r := range reservations {
		data[i] = dto.ToReservationResponse(&r)
	}

	return c.JSON(http.StatusOK, dto.PaginatedResponse[dto.ReservationResponse]{
		Data:  data,
		Total: total,
		Page:  filters.Page,
		Limit: filters.Limit,
	})
}

// toHTTPError maps service-layer errors onto HTTP status codes.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrReservationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyCancelled):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, admission.ErrPastDate),
		errors.Is(err, admission.ErrTooFarAhead),
		errors.Is(err, admission.ErrClosedToday),
		errors.Is(err, admission.ErrOutsideHours),
		errors.Is(err, admission.ErrInvalidInterval),
		errors.Is(err, lifecycle.ErrCancelledTerminal),
		errors.Is(err, lifecycle.ErrInvalidStatus):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
