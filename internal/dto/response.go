package dto

import (
	"time"

	"github.com/bookatable/reservation-service/internal/models"
	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID                `json:"id"`
	Name         string                   `json:"name"`
	Email        string                   `json:"email"`
	PeopleCount  int                      `json:"people_count"`
	Date         string                   `json:"date"`
	Time         string                   `json:"time"`
	Status       models.ReservationStatus `json:"status"`
	RestaurantID uuid.UUID                `json:"restaurant_id"`
	CreatedAt    time.Time                `json:"created_at"`
}

type RestaurantResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	City        string           `json:"city"`
	Address     string           `json:"address"`
	Description string           `json:"description,omitempty"`
	Cuisine     string           `json:"cuisine,omitempty"`
	Image       string           `json:"image,omitempty"`
	Rating      float64          `json:"rating"`
	OpenHours   models.OpenHours `json:"open_hours,omitempty"`
}

type PaginatedResponse[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

type CancelResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToReservationResponse(r *models.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PeopleCount:  r.PeopleCount,
		Date:         r.Date.UTC().Format("2006-01-02"),
		Time:         r.Time,
		Status:       r.Status,
		RestaurantID: r.RestaurantID,
		CreatedAt:    r.CreatedAt,
	}
}

func ToRestaurantResponse(r *models.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		City:        r.City,
		Address:     r.Address,
		Description: r.Description,
		Cuisine:     r.Cuisine,
		Image:       r.Image,
		Rating:      r.Rating,
		OpenHours:   r.OpenHours,
	}
}
