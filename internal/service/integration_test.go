//go:build integration

package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/bookatable/reservation-service/internal/models"
	"github.com/bookatable/reservation-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "reservations_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	testDB.Exec("DROP TABLE IF EXISTS reservations")
	testDB.Exec("DROP TABLE IF EXISTS restaurants")

	if err := testDB.AutoMigrate(&models.Restaurant{}, &models.Reservation{}); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	code := m.Run()

	testDB.Exec("DROP TABLE IF EXISTS reservations")
	testDB.Exec("DROP TABLE IF EXISTS restaurants")

	os.Exit(code)
}

func cleanTables() {
	testDB.Exec("DELETE FROM reservations")
	testDB.Exec("DELETE FROM restaurants")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// countingNotifier is safe for concurrent use.
type countingNotifier struct {
	mu            sync.Mutex
	created       int
	statusChanged int
	cancelled     int
}

func (n *countingNotifier) ReservationCreated(email, name, cancelURL string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created++
}

func (n *countingNotifier) StatusChanged(email, name string, status models.ReservationStatus) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.statusChanged++
}

func (n *countingNotifier) ReservationCancelled(email, name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelled++
}

func createTestRestaurant(t *testing.T) *models.Restaurant {
	t.Helper()
	restaurant := &models.Restaurant{
		Name:      "Trattoria Integrazione",
		City:      "Kraków",
		Address:   "ul. Testowa 1",
		OpenHours: everyDay,
	}
	require.NoError(t, testDB.Create(restaurant).Error)
	return restaurant
}

func newIntegrationService(n *countingNotifier) ReservationService {
	restaurantRepo := repository.NewRestaurantRepository(testDB)
	reservationRepo := repository.NewReservationRepository(testDB)
	return NewReservationService(reservationRepo, restaurantRepo, n, frontendURL, zap.NewNop().Sugar())
}

func TestCreateAndCancelFlow(t *testing.T) {
	cleanTables()
	restaurant := createTestRestaurant(t)
	notify := &countingNotifier{}
	svc := newIntegrationService(notify)

	reservation, err := svc.Create(t.Context(), CreateReservationInput{
		Name:         "John Doe",
		Email:        "john@x.com",
		PeopleCount:  2,
		Date:         tomorrow(),
		Time:         "12:00",
		RestaurantID: restaurant.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, reservation.Status)
	assert.NotEmpty(t, reservation.CancelToken)
	assert.Equal(t, 1, notify.created)

	cancelled, err := svc.CancelByToken(t.Context(), reservation.CancelToken)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	assert.Equal(t, 1, notify.cancelled)

	_, err = svc.CancelByToken(t.Context(), reservation.CancelToken)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Equal(t, 1, notify.cancelled)

	// Cancelled is terminal for the admin path as well.
	_, err = svc.UpdateStatus(t.Context(), reservation.ID, models.StatusAccepted)
	assert.Error(t, err)
}

// Ten concurrent accepts on a pending reservation must produce exactly
// one persisted change and one notification; the rest are no-ops.
func TestConcurrentStatusUpdates(t *testing.T) {
	cleanTables()
	restaurant := createTestRestaurant(t)
	notify := &countingNotifier{}
	svc := newIntegrationService(notify)

	reservation, err := svc.Create(t.Context(), CreateReservationInput{
		Name:         "Jane Doe",
		Email:        "jane@x.com",
		PeopleCount:  4,
		Date:         tomorrow(),
		Time:         "18:30",
		RestaurantID: restaurant.ID,
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 10)

	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.UpdateStatus(context.Background(), reservation.ID, models.StatusAccepted); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected update error: %v", err)
	}

	updated, err := svc.FindStatus(t.Context(), reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)
	assert.Equal(t, 1, notify.statusChanged)
}
