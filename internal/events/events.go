package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"etuition/internal/model"
)

const (
	EventApplicationCreated = "application.created"
	EventPaymentSettled     = "payment.settled"
)

type Event struct {
	EventType    string    `json:"event_type"`
	TuitionId    string    `json:"tuition_id"`
	TutorEmail   string    `json:"tutor_email"`
	StudentEmail string    `json:"student_email"`
	Amount       int64     `json:"amount,omitempty"`
	TrackingId   string    `json:"tracking_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type EventSender struct {
	writer *kafka.Writer
}

func NewEventSender(brokers []string, topic string) *EventSender {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &EventSender{writer: writer}
}

func (s *EventSender) Close() error {
	return s.writer.Close()
}

func (s *EventSender) PublishApplicationCreated(ctx context.Context, app *model.Application) error {
	return s.send(ctx, Event{
		EventType:    EventApplicationCreated,
		TuitionId:    app.TuitionId.String(),
		TutorEmail:   app.TutorEmail,
		StudentEmail: app.StudentEmail,
		OccurredAt:   time.Now(),
	})
}

func (s *EventSender) PublishPaymentSettled(ctx context.Context, payment *model.Payment) error {
	return s.send(ctx, Event{
		EventType:    EventPaymentSettled,
		TuitionId:    payment.TuitionId.String(),
		TutorEmail:   payment.TutorEmail,
		StudentEmail: payment.StudentEmail,
		Amount:       payment.Amount,
		TrackingId:   payment.TrackingId,
		OccurredAt:   time.Now(),
	})
}

func (s *EventSender) send(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(event.TuitionId),
		Value: data,
		Time:  time.Now(),
	}

	if err := s.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to send %s event: %w", event.EventType, err)
	}

	return nil
}

// NoopSender is used when no brokers are configured.
type NoopSender struct{}

func (NoopSender) PublishApplicationCreated(context.Context, *model.Application) error { return nil }
func (NoopSender) PublishPaymentSettled(context.Context, *model.Payment) error { return nil }
