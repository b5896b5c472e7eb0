// Package mailer consumes notification messages and turns them into
// customer email.
package mailer

import (
	"encoding/json"
	"fmt"

	"github.com/bookatable/reservation-service/internal/models"
	"github.com/bookatable/reservation-service/internal/notifier"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Sender delivers a single rendered mail.
type Sender interface {
	Send(to, subject, body string) error
}

type Worker struct {
	sender Sender
	log    *zap.SugaredLogger
}

func NewWorker(sender Sender, log *zap.SugaredLogger) *Worker {
	return &Worker{sender: sender, log: log}
}

// Start drains the delivery channel in a background goroutine.
func (w *Worker) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			w.handleMessage(msg)
		}
		w.log.Info("notification channel closed, stopping mailer")
	}()
}

func (w *Worker) handleMessage(msg amqp.Delivery) {
	var m notifier.Message
	if err := json.Unmarshal(msg.Body, &m); err != nil {
		w.log.Errorw("failed to unmarshal notification", "error", err)
		msg.Nack(false, false)
		return
	}

	subject, body, err := render(m)
	if err != nil {
		w.log.Errorw("failed to render notification", "kind", m.Kind, "error", err)
		msg.Nack(false, false)
		return
	}

	// A failed send is logged and acked: the reservation change is
	// authoritative whether or not the customer was actually mailed.
	if err := w.sender.Send(m.Email, subject, body); err != nil {
		w.log.Errorw("failed to send mail", "to", m.Email, "subject", subject, "error", err)
	}
	msg.Ack(false)
}

func render(m notifier.Message) (subject, body string, err error) {
	switch m.Kind {
	case notifier.KindCreated:
		subject = "Your reservation has been placed"
		body = fmt.Sprintf(
			"Hi %s,\n\nyour reservation has been placed and is awaiting confirmation.\n"+
				"If your plans change, you can cancel it here: %s\n",
			m.Name, m.CancelURL)
	case notifier.KindStatusChanged:
		verdict := "has been rejected"
		if m.Status == models.StatusAccepted {
			verdict = "has been accepted"
		}
		subject = "Reservation update"
		body = fmt.Sprintf("Hi %s,\n\nyour reservation %s.\n", m.Name, verdict)
	case notifier.KindCancelled:
		subject = "Reservation cancelled"
		body = fmt.Sprintf("Hi %s,\n\nyour reservation has been cancelled.\n", m.Name)
	default:
		return "", "", fmt.Errorf("unknown notification kind %q", m.Kind)
	}
	return subject, body, nil
}
