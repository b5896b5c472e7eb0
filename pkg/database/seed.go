package database

import (
	"fmt"
	"log"

	"github.com/bookatable/reservation-service/internal/models"
	"gorm.io/gorm"
)

var seedCities = []string{"Kraków", "Warszawa", "Gdańsk", "Wrocław", "Poznań"}

var seedCuisines = []string{"Sushi", "Italian", "American", "Indian", "Mexican", "Polish", "Chinese"}

var fullWeek = models.OpenHours{
	"monday":    {"10:00", "22:00"},
	"tuesday":   {"10:00", "22:00"},
	"wednesday": {"10:00", "22:00"},
	"thursday":  {"10:00", "22:00"},
	"friday":    {"10:00", "23:00"},
	"saturday":  {"11:00", "23:00"},
	"sunday":    {"11:00", "21:00"},
}

// Seed inserts a handful of demo restaurants when the table is empty.
func Seed(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		log.Printf("seed: count restaurants: %v", err)
		return
	}
	if count > 0 {
		return
	}

	for i := 0; i < 10; i++ {
		city := seedCities[i%len(seedCities)]
		cuisine := seedCuisines[i%len(seedCuisines)]
		restaurant := models.Restaurant{
			Name:        fmt.Sprintf("Restaurant #%d %s", i+1, cuisine),
			City:        city,
			Address:     fmt.Sprintf("ul. Przykładowa %d", i+1),
			Description: fmt.Sprintf("%s restaurant in %s.", cuisine, city),
			Cuisine:     cuisine,
			Rating:      float64(i%5) + 0.5,
			OpenHours:   fullWeek,
		}
		if err := db.Create(&restaurant).Error; err != nil {
			log.Printf("seed: create restaurant: %v", err)
			return
		}
	}

	log.Println("seeded demo restaurants")
}
