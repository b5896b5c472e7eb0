package admission

import (
	"testing"
	"time"

	"github.com/bookatable/reservation-service/internal/models"
	"github.com/stretchr/testify/assert"
)

// 2025-10-26 is a Sunday.
var now = time.Date(2025, 10, 26, 15, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return now.AddDate(0, 0, offset)
}

func TestCheckDate(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{"yesterday rejected", day(-1), ErrPastDate},
		{"today admissible", day(0), nil},
		{"today at midnight admissible", time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC), nil},
		{"thirty days ahead admissible", day(30), nil},
		{"thirty-one days ahead rejected", day(31), ErrTooFarAhead},
		{"far future rejected", day(365), ErrTooFarAhead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDate(tt.date, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckOpenHours_ClosedDay(t *testing.T) {
	hours := models.OpenHours{"monday": {"10:00", "22:00"}}
	tuesday := time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC)

	err := CheckOpenHours(tuesday, "12:00", hours)

	assert.ErrorIs(t, err, ErrClosedToday)
}

func TestCheckOpenHours_Boundaries(t *testing.T) {
	hours := models.OpenHours{"monday": {"09:00", "23:00"}}
	monday := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		time    string
		wantErr error
	}{
		{"08:59", ErrOutsideHours},
		{"09:00", nil},
		{"12:30", nil},
		{"23:00", nil}, // close boundary is inclusive
		{"23:01", ErrOutsideHours},
	}

	for _, tt := range tests {
		t.Run(tt.time, func(t *testing.T) {
			err := CheckOpenHours(monday, tt.time, hours)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckOpenHours_ErrorNamesWindow(t *testing.T) {
	hours := models.OpenHours{"monday": {"09:00", "23:00"}}
	monday := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)

	err := CheckOpenHours(monday, "08:00", hours)

	assert.ErrorContains(t, err, "09:00-23:00")
}

func TestCheckInterval(t *testing.T) {
	assert.NoError(t, CheckInterval("12:00"))
	assert.NoError(t, CheckInterval("12:30"))
	assert.ErrorIs(t, CheckInterval("12:15"), ErrInvalidInterval)
	assert.ErrorIs(t, CheckInterval("12:01"), ErrInvalidInterval)
	assert.ErrorIs(t, CheckInterval("12:45"), ErrInvalidInterval)
}

func TestCheck_ReturnsFirstFailure(t *testing.T) {
	hours := models.OpenHours{"monday": {"09:00", "23:00"}}
	monday := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)

	// Past date wins over the bad time slot.
	pastMonday := monday.AddDate(0, 0, -7)
	assert.ErrorIs(t, Check(pastMonday, "03:15", now, hours), ErrPastDate)

	// Valid date, outside hours wins over the bad interval.
	assert.ErrorIs(t, Check(monday, "03:15", now, hours), ErrOutsideHours)

	// Valid date and hours, interval still enforced.
	assert.ErrorIs(t, Check(monday, "12:15", now, hours), ErrInvalidInterval)

	assert.NoError(t, Check(monday, "12:30", now, hours))
}
