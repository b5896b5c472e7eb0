package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpenHours maps a lowercase weekday name ("sunday".."saturday") to an
// [open, close] pair of zero-padded "HH:MM" strings. A missing weekday
// means the restaurant is closed that day.
type OpenHours map[string][2]string

func (h OpenHours) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}
	return json.Marshal(h)
}

func (h *OpenHours) Scan(value any) error {
	if value == nil {
		*h = nil
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("open_hours: unsupported scan type %T", value)
	}
	return json.Unmarshal(b, h)
}

type Restaurant struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	City        string    `gorm:"not null" json:"city"`
	Address     string    `gorm:"not null" json:"address"`
	Description string    `json:"description,omitempty"`
	Cuisine     string    `json:"cuisine,omitempty"`
	Image       string    `json:"image,omitempty"`
	Rating      float64   `gorm:"default:0" json:"rating"`
	OpenHours   OpenHours `gorm:"type:jsonb" json:"open_hours,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Reservations []Reservation `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"reservations,omitempty"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
