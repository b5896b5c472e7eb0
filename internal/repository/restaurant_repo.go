package repository

import (
	"context"

	"github.com/bookatable/reservation-service/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantFilters narrows the restaurant listing. Zero values mean
// "no filter"; Page/Limit default to 1/10.
type RestaurantFilters struct {
	Search  string
	City    string
	Cuisine string
	Page    int
	Limit   int
}

type RestaurantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	FindAll(ctx context.Context, filters RestaurantFilters) ([]models.Restaurant, int64, error)
	Create(ctx context.Context, restaurant *models.Restaurant) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindAll(ctx context.Context, filters RestaurantFilters) ([]models.Restaurant, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Restaurant{})

	if filters.Search != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+filters.Search+"%")
	}
	if filters.City != "" {
		q = q.Where("LOWER(city) LIKE LOWER(?)", "%"+filters.City+"%")
	}
	if filters.Cuisine != "" {
		q = q.Where("LOWER(cuisine) = LOWER(?)", filters.Cuisine)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filters.Page, filters.Limit)

	var restaurants []models.Restaurant
	err := q.Order("name ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&restaurants).Error
	if err != nil {
		return nil, 0, err
	}
	return restaurants, total, nil
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
