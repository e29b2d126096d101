package notifier

import (
	"classbook/config"
	"classbook/infras/kafka"
	"classbook/internal/events"
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer reads booking events from the event topic and mails the affected
// user. Mail failures are logged and the event is dropped, delivery is best
// effort by design of the topic.
type Consumer struct {
	client kafka.Client
	cfg    *config.Config
	mailer *Mailer
}

func NewConsumer(client kafka.Client, cfg *config.Config, mailer *Mailer) *Consumer {
	return &Consumer{
		client: client,
		cfg:    cfg,
		mailer: mailer,
	}
}

// Run blocks until the context is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	log.Info().Str("topic", c.cfg.Kafka.EventTopic).Msg("notifier consumer started")

	c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.EventTopic, c.Handle)
}

// Handle routes a single event message by its key.
func (c *Consumer) Handle(msg kafkaGo.Message) {
	key := string(msg.Key)

	switch key {
	case events.TypeUserRegistered:
		var event events.UserEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to decode user event")

			return
		}

		if err := c.mailer.SendWelcome(event); err != nil {
			log.Error().Err(err).Str("email", event.Email).Msg("failed to send welcome mail")
		}
	case events.TypeBookingCreated:
		var event events.BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to decode booking event")

			return
		}

		if err := c.mailer.SendBookingConfirmation(event); err != nil {
			log.Error().Err(err).Int64("bookingID", event.BookingID).Msg("failed to send confirmation mail")
		}
	case events.TypeBookingCancelled:
		var event events.BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to decode booking event")

			return
		}

		if err := c.mailer.SendBookingCancellation(event); err != nil {
			log.Error().Err(err).Int64("bookingID", event.BookingID).Msg("failed to send cancellation mail")
		}
	default:
		log.Warn().Str("key", key).Msg("skipping event with unknown key")
	}
}
