package repository

import (
	"context"
	"time"

	"github.com/bookatable/reservation-service/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationFilters narrows the per-restaurant reservation listing.
type ReservationFilters struct {
	Status *models.ReservationStatus
	Date   *time.Time
	Page   int
	Limit  int
}

type ReservationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error
	Save(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Reservation, error)
	FindByCancelTokenForUpdate(ctx context.Context, tx *gorm.DB, token string) (*models.Reservation, error)
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID, filters ReservationFilters) ([]models.Reservation, int64, error)

	// Transaction runs fn inside a single database transaction; any
	// error from fn rolls the whole unit of work back.
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *reservationRepository) Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	return tx.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) Save(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	return tx.WithContext(ctx).Save(reservation).Error
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).First(&reservation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// forUpdate appends SELECT ... FOR UPDATE so the read-check-write
// sequences on a reservation row serialize at the database.
func forUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// FindByIDForUpdate acquires a row-level lock on the reservation within
// the given transaction, serializing concurrent status updates.
func (r *reservationRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := forUpdate(tx.WithContext(ctx)).
		First(&reservation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindByCancelTokenForUpdate(ctx context.Context, tx *gorm.DB, token string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := forUpdate(tx.WithContext(ctx)).
		First(&reservation, "cancel_token = ?", token).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID, filters ReservationFilters) ([]models.Reservation, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("restaurant_id = ?", restaurantID)

	if filters.Status != nil {
		q = q.Where("status = ?", *filters.Status)
	}
	if filters.Date != nil {
		q = q.Where("date = ?", filters.Date.UTC().Format("2006-01-02"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filters.Page, filters.Limit)

	var reservations []models.Reservation
	err := q.Order("date ASC, time ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&reservations).Error
	if err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}
