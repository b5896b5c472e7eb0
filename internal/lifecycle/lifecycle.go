// Package lifecycle is the reservation status state machine. It decides
// whether a requested status change is legal and which notification, if
// any, the caller owes the customer once the change is persisted.
package lifecycle

import (
	"errors"

	"github.com/bookatable/reservation-service/internal/models"
)

// Notification names the mail the caller must dispatch after a
// successful transition is written.
type Notification int

const (
	NotifyNone Notification = iota
	NotifyStatusChanged
	NotifyCancelled
)

var (
	ErrCancelledTerminal = errors.New("cannot change status of a cancelled reservation")
	ErrInvalidStatus     = errors.New("unknown reservation status")
)

// Result describes the outcome of a legal transition.
type Result struct {
	// Changed is false when the reservation already has the requested
	// status; callers must skip the write and the notification.
	Changed      bool
	Notification Notification
}

// Transition applies the status rules: cancelled is terminal, a
// same-status request is an idempotent no-op, and every real change
// carries exactly one notification.
func Transition(current, requested models.ReservationStatus) (Result, error) {
	if !requested.Valid() {
		return Result{}, ErrInvalidStatus
	}
	if current == models.StatusCancelled {
		return Result{}, ErrCancelledTerminal
	}
	if current == requested {
		return Result{Changed: false, Notification: NotifyNone}, nil
	}

	n := NotifyStatusChanged
	if requested == models.StatusCancelled {
		n = NotifyCancelled
	}
	return Result{Changed: true, Notification: n}, nil
}
