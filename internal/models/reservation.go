package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusAccepted  ReservationStatus = "accepted"
	StatusRejected  ReservationStatus = "rejected"
	StatusCancelled ReservationStatus = "cancelled"
)

// Valid reports whether s is one of the known reservation statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

type Reservation struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string            `gorm:"not null" json:"name"`
	Email       string            `gorm:"not null" json:"email"`
	PeopleCount int               `gorm:"not null" json:"people_count"`
	Date        time.Time         `gorm:"type:date;not null" json:"date"`
	Time        string            `gorm:"type:varchar(5);not null" json:"time"`
	Status      ReservationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CancelToken string            `gorm:"uniqueIndex;not null" json:"-"`

	RestaurantID uuid.UUID   `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
