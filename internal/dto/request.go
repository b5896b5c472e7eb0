package dto

type CreateReservationRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PeopleCount  int    `json:"people_count" validate:"required,gte=1,lte=10"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time" validate:"required,datetime=15:04"`
	RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected cancelled"`
}
