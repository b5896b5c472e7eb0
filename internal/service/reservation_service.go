package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bookatable/reservation-service/internal/admission"
	"github.com/bookatable/reservation-service/internal/lifecycle"
	"github.com/bookatable/reservation-service/internal/models"
	"github.com/bookatable/reservation-service/internal/notifier"
	"github.com/bookatable/reservation-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
	ErrMissingFrontendURL  = errors.New("frontend base URL is not configured")
)

type CreateReservationInput struct {
	Name         string
	Email        string
	PeopleCount  int
	Date         time.Time
	Time         string
	RestaurantID uuid.UUID
}

type ReservationService interface {
	Create(ctx context.Context, input CreateReservationInput) (*models.Reservation, error)
	FindStatus(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	CancelByToken(ctx context.Context, token string) (*models.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ReservationStatus) (*models.Reservation, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, filters repository.ReservationFilters) ([]models.Reservation, int64, error)
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	restaurantRepo  repository.RestaurantRepository
	notifier        notifier.Notifier
	frontendURL     string
	log             *zap.SugaredLogger
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	restaurantRepo repository.RestaurantRepository,
	n notifier.Notifier,
	frontendURL string,
	log *zap.SugaredLogger,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
		notifier:        n,
		frontendURL:     frontendURL,
		log:             log,
	}
}

func (s *reservationService) Create(ctx context.Context, input CreateReservationInput) (*models.Reservation, error) {
	// The cancellation link cannot be built without a base URL, so a
	// missing value fails the request before any I/O happens.
	if s.frontendURL == "" {
		return nil, ErrMissingFrontendURL
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, input.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	if err := admission.Check(input.Date, input.Time, time.Now(), restaurant.OpenHours); err != nil {
		return nil, err
	}

	reservation := &models.Reservation{
		Name:         input.Name,
		Email:        input.Email,
		PeopleCount:  input.PeopleCount,
		Date:         input.Date,
		Time:         input.Time,
		Status:       models.StatusPending,
		CancelToken:  uuid.NewString(),
		RestaurantID: input.RestaurantID,
	}

	err = s.reservationRepo.Transaction(ctx, func(tx *gorm.DB) error {
		return s.reservationRepo.Create(ctx, tx, reservation)
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("reservation created",
		"id", reservation.ID,
		"restaurant_id", reservation.RestaurantID,
		"date", reservation.Date.UTC().Format("2006-01-02"),
		"time", reservation.Time,
	)
	s.notifier.ReservationCreated(reservation.Email, reservation.Name, s.cancelURL(reservation.CancelToken))

	return reservation, nil
}

func (s *reservationService) FindStatus(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) CancelByToken(ctx context.Context, token string) (*models.Reservation, error) {
	var result *models.Reservation

	err := s.reservationRepo.Transaction(ctx, func(tx *gorm.DB) error {
		reservation, err := s.reservationRepo.FindByCancelTokenForUpdate(ctx, tx, token)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		// Cancellation is a one-shot customer action: a second use of
		// the token is rejected rather than re-sending the notice.
		if reservation.Status == models.StatusCancelled {
			return ErrAlreadyCancelled
		}

		reservation.Status = models.StatusCancelled
		if err := s.reservationRepo.Save(ctx, tx, reservation); err != nil {
			return err
		}

		result = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("reservation cancelled by token", "id", result.ID)
	s.notifier.ReservationCancelled(result.Email, result.Name)

	return result, nil
}

func (s *reservationService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ReservationStatus) (*models.Reservation, error) {
	var (
		result       *models.Reservation
		notification lifecycle.Notification
	)

	err := s.reservationRepo.Transaction(ctx, func(tx *gorm.DB) error {
		reservation, err := s.reservationRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		transition, err := lifecycle.Transition(reservation.Status, status)
		if err != nil {
			return err
		}

		if transition.Changed {
			reservation.Status = status
			if err := s.reservationRepo.Save(ctx, tx, reservation); err != nil {
				return err
			}
		}

		result = reservation
		notification = transition.Notification
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch notification {
	case lifecycle.NotifyStatusChanged:
		s.log.Infow("reservation status updated", "id", result.ID, "status", result.Status)
		s.notifier.StatusChanged(result.Email, result.Name, result.Status)
	case lifecycle.NotifyCancelled:
		s.log.Infow("reservation cancelled", "id", result.ID)
		s.notifier.ReservationCancelled(result.Email, result.Name)
	}

	return result, nil
}

func (s *reservationService) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, filters repository.ReservationFilters) ([]models.Reservation, int64, error) {
	if _, err := s.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrRestaurantNotFound
		}
		return nil, 0, err
	}
	return s.reservationRepo.FindByRestaurant(ctx, restaurantID, filters)
}

func (s *reservationService) cancelURL(token string) string {
	return fmt.Sprintf("%s/reservations/cancel?token=%s", strings.TrimRight(s.frontendURL, "/"), token)
}
