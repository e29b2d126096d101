package notifier_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"classbook/internal/events"
	"classbook/internal/notifier"
	"classbook/internal/notifier/mocks"
)

func TestMailer_SendWelcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSender := mocks.NewMockSender(ctrl)
	mailer := notifier.NewMailer(mockSender)

	event := events.UserEvent{
		UserID: 7,
		Name:   "New User",
		Email:  "new@example.com",
	}

	var sentBody string

	mockSender.EXPECT().
		Send("new@example.com", "Welcome to Classroom Booking System", gomock.Any()).
		DoAndReturn(func(_, _, body string) error {
			sentBody = body

			return nil
		})

	err := mailer.SendWelcome(event)

	assert.NoError(t, err)
	assert.Contains(t, sentBody, "New User")
	assert.Contains(t, sentBody, "new@example.com")
}

func TestMailer_SendBookingConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSender := mocks.NewMockSender(ctrl)
	mailer := notifier.NewMailer(mockSender)

	event := events.BookingEvent{
		BookingID:   1,
		UserName:    "Test User",
		UserEmail:   "test@example.com",
		RoomName:    "Room A",
		BookingDate: "2026-09-01",
		StartTime:   "08:00",
		EndTime:     "09:30",
	}

	var sentBody string

	mockSender.EXPECT().
		Send("test@example.com", "Booking Confirmation", gomock.Any()).
		DoAndReturn(func(_, _, body string) error {
			sentBody = body

			return nil
		})

	err := mailer.SendBookingConfirmation(event)

	assert.NoError(t, err)
	assert.Contains(t, sentBody, "Room A")
	assert.Contains(t, sentBody, "2026-09-01")
	assert.Contains(t, sentBody, "08:00 - 09:30")
}

func TestMailer_SendBookingCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSender := mocks.NewMockSender(ctrl)
	mailer := notifier.NewMailer(mockSender)

	event := events.BookingEvent{
		BookingID:   2,
		UserName:    "Test User",
		UserEmail:   "test@example.com",
		RoomName:    "Room B",
		BookingDate: "2026-09-02",
		StartTime:   "10:00",
		EndTime:     "11:30",
	}

	mockSender.EXPECT().
		Send("test@example.com", "Booking Cancellation Confirmation", gomock.Any()).
		Return(nil)

	err := mailer.SendBookingCancellation(event)

	assert.NoError(t, err)
}

func TestMailer_SenderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSender := mocks.NewMockSender(ctrl)
	mailer := notifier.NewMailer(mockSender)

	mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp unreachable"))

	err := mailer.SendWelcome(events.UserEvent{Email: "new@example.com"})

	assert.Error(t, err)
}
