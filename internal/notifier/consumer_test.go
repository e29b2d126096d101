package notifier_test

import (
	"encoding/json"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/mock/gomock"

	"classbook/config"
	kafkaMocks "classbook/infras/kafka/mocks"
	"classbook/internal/events"
	"classbook/internal/notifier"
	"classbook/internal/notifier/mocks"
)

func TestConsumer_Handle(t *testing.T) {
	encode := func(t *testing.T, payload any) []byte {
		t.Helper()

		value, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}

		return value
	}

	tests := []struct {
		name      string
		msg       func(t *testing.T) kafkaGo.Message
		setupMock func(sender *mocks.MockSender)
	}{
		{
			name: "user registered sends welcome mail",
			msg: func(t *testing.T) kafkaGo.Message {
				return kafkaGo.Message{
					Key: []byte(events.TypeUserRegistered),
					Value: encode(t, events.UserEvent{
						UserID: 7,
						Name:   "New User",
						Email:  "new@example.com",
					}),
				}
			},
			setupMock: func(sender *mocks.MockSender) {
				sender.EXPECT().
					Send("new@example.com", gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "booking created sends confirmation mail",
			msg: func(t *testing.T) kafkaGo.Message {
				return kafkaGo.Message{
					Key: []byte(events.TypeBookingCreated),
					Value: encode(t, events.BookingEvent{
						BookingID: 1,
						UserEmail: "test@example.com",
						RoomName:  "Room A",
					}),
				}
			},
			setupMock: func(sender *mocks.MockSender) {
				sender.EXPECT().
					Send("test@example.com", gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "booking cancelled sends cancellation mail",
			msg: func(t *testing.T) kafkaGo.Message {
				return kafkaGo.Message{
					Key: []byte(events.TypeBookingCancelled),
					Value: encode(t, events.BookingEvent{
						BookingID: 2,
						UserEmail: "test@example.com",
					}),
				}
			},
			setupMock: func(sender *mocks.MockSender) {
				sender.EXPECT().
					Send("test@example.com", gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown key is skipped",
			msg: func(t *testing.T) kafkaGo.Message {
				return kafkaGo.Message{
					Key:   []byte("unknown.event"),
					Value: []byte("{}"),
				}
			},
			setupMock: func(sender *mocks.MockSender) {},
		},
		{
			name: "malformed payload is dropped",
			msg: func(t *testing.T) kafkaGo.Message {
				return kafkaGo.Message{
					Key:   []byte(events.TypeBookingCreated),
					Value: []byte("not json"),
				}
			},
			setupMock: func(sender *mocks.MockSender) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSender := mocks.NewMockSender(ctrl)
			mockClient := kafkaMocks.NewMockClient(ctrl)

			tt.setupMock(mockSender)

			cfg := &config.Config{}
			consumer := notifier.NewConsumer(mockClient, cfg, notifier.NewMailer(mockSender))

			consumer.Handle(tt.msg(t))
		})
	}
}
