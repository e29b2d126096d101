package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"classbook/config"
	"classbook/infras/kafka"
	"classbook/infras/otel"
	"classbook/shared/constant"
	"classbook/shared/timezone"
	"context"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
	TypeUserRegistered   = "user.registered"
)

type BookingEvent struct {
	Type        string `json:"type"`
	BookingID   int64  `json:"booking_id"`
	UserName    string `json:"user_name"`
	UserEmail   string `json:"user_email"`
	RoomName    string `json:"room_name"`
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Purpose     string `json:"purpose,omitempty"`
	OccurredAt  string `json:"occurred_at"`
}

type UserEvent struct {
	Type       string `json:"type"`
	UserID     int64  `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	OccurredAt string `json:"occurred_at"`
}

// Dispatcher publishes domain events to the event topic. Delivery is best
// effort: failures are logged and never surfaced to the caller, a lost event
// must not fail the request that produced it.
type Dispatcher interface {
	BookingCreated(ctx context.Context, event BookingEvent)
	BookingCancelled(ctx context.Context, event BookingEvent)
	UserRegistered(ctx context.Context, event UserEvent)
}

type dispatcherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Dispatcher {
	return &dispatcherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (d *dispatcherImpl) BookingCreated(ctx context.Context, event BookingEvent) {
	event.Type = TypeBookingCreated
	d.dispatch(ctx, event.Type, event)
}

func (d *dispatcherImpl) BookingCancelled(ctx context.Context, event BookingEvent) {
	event.Type = TypeBookingCancelled
	d.dispatch(ctx, event.Type, event)
}

func (d *dispatcherImpl) UserRegistered(ctx context.Context, event UserEvent) {
	event.Type = TypeUserRegistered
	d.dispatch(ctx, event.Type, event)
}

func (d *dispatcherImpl) dispatch(ctx context.Context, key string, payload any) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".dispatch")
	defer scope.End()

	scope.SetAttribute("event.type", key)

	message := kafka.Message{
		Key:   key,
		Value: payload,
	}

	if err := d.client.SendMessages(ctx, d.cfg.Kafka.EventTopic, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("eventType", key).Msg("failed to dispatch event")
	}
}

// Stamp fills the occurrence time in the standard timestamp format.
func Stamp() string {
	return timezone.Format(timezone.Now(), constant.TimestampFormat)
}
