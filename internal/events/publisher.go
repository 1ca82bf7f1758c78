package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"fmt"

	"huddle/config"
	"huddle/infras/kafka"
	"huddle/infras/otel"
	"huddle/internal/domains/booking/model"
	"huddle/shared/constant"
	"huddle/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	ActionBookingCreated   = "booking.created"
	ActionBookingCancelled = "booking.cancelled"
)

// BookingEvent is the payload published on the booking topic. Messages are
// keyed by room id so consumers see per-room ordering.
type BookingEvent struct {
	Action     string `json:"action"`
	BookingID  string `json:"booking_id"`
	RoomID     string `json:"room_id"`
	UserID     string `json:"user_id"`
	StartTime  int64  `json:"start_time"`
	EndTime    int64  `json:"end_time"`
	Title      string `json:"title"`
	OccurredAt string `json:"occurred_at"`
}

type Publisher interface {
	BookingCreated(ctx context.Context, booking model.Booking) error
	BookingCancelled(ctx context.Context, booking model.Booking) error
}

type kafkaPublisher struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

// New returns the Kafka-backed publisher, or a no-op one when the event
// stream is disabled in config.
func New(cfg *config.Config, client kafka.Client, ot otel.Otel) Publisher {
	if !cfg.Events.Kafka.Enable {
		log.Info().Msg("Booking event stream disabled, using no-op publisher")

		return NewNoop()
	}

	return &kafkaPublisher{
		client: client,
		cfg:    cfg,
		otel:   ot,
	}
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking model.Booking) error {
	return p.publish(ctx, ActionBookingCreated, booking)
}

func (p *kafkaPublisher) BookingCancelled(ctx context.Context, booking model.Booking) error {
	return p.publish(ctx, ActionBookingCancelled, booking)
}

func (p *kafkaPublisher) publish(ctx context.Context, action string, booking model.Booking) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"event.action":     action,
		"event.booking_id": booking.ID,
	})

	event := BookingEvent{
		Action:     action,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		UserID:     booking.UserID,
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		Title:      booking.Title,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}

	message := kafka.Message{
		Key:   booking.RoomID,
		Value: event,
	}

	topic := p.cfg.Events.Kafka.BookingTopic
	if err = p.client.SendMessages(ctx, topic, message); err != nil {
		log.Error().Err(err).Str("topic", topic).Str("action", action).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}

type noopPublisher struct{}

func NewNoop() Publisher {
	return &noopPublisher{}
}

func (*noopPublisher) BookingCreated(context.Context, model.Booking) error {
	return nil
}

func (*noopPublisher) BookingCancelled(context.Context, model.Booking) error {
	return nil
}
