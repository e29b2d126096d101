package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"classbook/internal/domains/booking/model"
)

func TestBooking_Status(t *testing.T) {
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		bookingDate time.Time
		want        string
	}{
		{
			name:        "tomorrow is upcoming",
			bookingDate: today.AddDate(0, 0, 1),
			want:        model.StatusUpcoming,
		},
		{
			name:        "same day is today",
			bookingDate: today,
			want:        model.StatusToday,
		},
		{
			name:        "same calendar day with later clock time is today",
			bookingDate: today.Add(23 * time.Hour),
			want:        model.StatusToday,
		},
		{
			name:        "yesterday is past",
			bookingDate: today.AddDate(0, 0, -1),
			want:        model.StatusPast,
		},
		{
			name:        "next month is upcoming",
			bookingDate: today.AddDate(0, 1, 0),
			want:        model.StatusUpcoming,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{BookingDate: tt.bookingDate}

			assert.Equal(t, tt.want, booking.Status(today))
		})
	}
}
