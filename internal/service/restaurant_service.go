package service

import (
	"context"
	"errors"

	"github.com/bookatable/reservation-service/internal/models"
	"github.com/bookatable/reservation-service/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RestaurantService interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	List(ctx context.Context, filters repository.RestaurantFilters) ([]models.Restaurant, int64, error)
}

type restaurantService struct {
	repo repository.RestaurantRepository
}

func NewRestaurantService(repo repository.RestaurantRepository) RestaurantService {
	return &restaurantService{repo: repo}
}

func (s *restaurantService) Get(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

func (s *restaurantService) List(ctx context.Context, filters repository.RestaurantFilters) ([]models.Restaurant, int64, error) {
	return s.repo.FindAll(ctx, filters)
}
