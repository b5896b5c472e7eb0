// Package notifier is the outbound notification boundary. The service
// layer calls it after a reservation change is committed; delivery is
// fire-and-forget, so failures here never undo a persisted change.
package notifier

import (
	"github.com/bookatable/reservation-service/internal/models"
	"github.com/bookatable/reservation-service/pkg/rabbitmq"
	"go.uber.org/zap"
)

// Message kinds carried on the notifications exchange.
const (
	KindCreated       = "reservation_created"
	KindStatusChanged = "status_changed"
	KindCancelled     = "reservation_cancelled"
)

// Message is the JSON payload the mailer worker consumes.
type Message struct {
	Kind      string                   `json:"kind"`
	Email     string                   `json:"email"`
	Name      string                   `json:"name"`
	Status    models.ReservationStatus `json:"status,omitempty"`
	CancelURL string                   `json:"cancel_url,omitempty"`
}

type Notifier interface {
	ReservationCreated(email, name, cancelURL string)
	StatusChanged(email, name string, status models.ReservationStatus)
	ReservationCancelled(email, name string)
}

type rabbitNotifier struct {
	publisher *rabbitmq.Publisher
	log       *zap.SugaredLogger
}

func New(publisher *rabbitmq.Publisher, log *zap.SugaredLogger) Notifier {
	return &rabbitNotifier{publisher: publisher, log: log}
}

func (n *rabbitNotifier) ReservationCreated(email, name, cancelURL string) {
	n.publish("reservation.created", Message{
		Kind:      KindCreated,
		Email:     email,
		Name:      name,
		CancelURL: cancelURL,
	})
}

func (n *rabbitNotifier) StatusChanged(email, name string, status models.ReservationStatus) {
	n.publish("reservation.status_changed", Message{
		Kind:   KindStatusChanged,
		Email:  email,
		Name:   name,
		Status: status,
	})
}

func (n *rabbitNotifier) ReservationCancelled(email, name string) {
	n.publish("reservation.cancelled", Message{
		Kind:  KindCancelled,
		Email: email,
		Name:  name,
	})
}

func (n *rabbitNotifier) publish(routingKey string, msg Message) {
	if err := n.publisher.Publish(routingKey, msg); err != nil {
		// The reservation change is already committed; losing the mail
		// must not fail the request.
		n.log.Errorw("failed to publish notification",
			"routing_key", routingKey,
			"email", msg.Email,
			"error", err,
		)
	}
}
