// Package admission holds the pure rules deciding whether a candidate
// reservation is admissible against the clock and the restaurant's
// weekly schedule. All calendar math is UTC so results never depend on
// the server locale.
package admission

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bookatable/reservation-service/internal/models"
)

// MaxDaysAhead is how far into the future a reservation may be placed.
// The window is inclusive on both ends: today and today+30 are fine.
const MaxDaysAhead = 30

var (
	ErrPastDate        = errors.New("cannot reserve a date in the past")
	ErrTooFarAhead     = errors.New("reservations are accepted at most 30 days ahead")
	ErrClosedToday     = errors.New("restaurant is closed on that day")
	ErrOutsideHours    = errors.New("reservation time is outside opening hours")
	ErrInvalidInterval = errors.New("reservations start on the hour or half hour")
)

// CheckDate verifies that date falls inside [today, today+MaxDaysAhead],
// comparing calendar days at UTC midnight.
func CheckDate(date, now time.Time) error {
	today := midnightUTC(now)
	day := midnightUTC(date)

	if day.Before(today) {
		return ErrPastDate
	}
	if day.After(today.AddDate(0, 0, MaxDaysAhead)) {
		return ErrTooFarAhead
	}
	return nil
}

// CheckOpenHours verifies that timeStr ("HH:MM") falls inside the
// restaurant's open window for date's UTC weekday. The close boundary
// is inclusive: a reservation exactly at closing time is admissible.
func CheckOpenHours(date time.Time, timeStr string, hours models.OpenHours) error {
	day := strings.ToLower(date.UTC().Weekday().String())

	window, ok := hours[day]
	if !ok {
		return ErrClosedToday
	}

	openAt, closeAt := window[0], window[1]
	// Zero-padded "HH:MM" strings order correctly under string compare.
	if timeStr < openAt || timeStr > closeAt {
		return fmt.Errorf("%w (open %s-%s)", ErrOutsideHours, openAt, closeAt)
	}
	return nil
}

// CheckInterval verifies that timeStr lands on a half-hour boundary.
func CheckInterval(timeStr string) error {
	if !strings.HasSuffix(timeStr, ":00") && !strings.HasSuffix(timeStr, ":30") {
		return ErrInvalidInterval
	}
	return nil
}

// Check runs all three admission rules in order and returns the first
// failure: date window, opening hours, half-hour interval.
func Check(date time.Time, timeStr string, now time.Time, hours models.OpenHours) error {
	if err := CheckDate(date, now); err != nil {
		return err
	}
	if err := CheckOpenHours(date, timeStr, hours); err != nil {
		return err
	}
	return CheckInterval(timeStr)
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
