package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"classbook/shared/failure"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad request", err: failure.BadRequestFromString("bad input"), want: http.StatusBadRequest},
		{name: "unauthorized", err: failure.Unauthorized("invalid credentials"), want: http.StatusUnauthorized},
		{name: "forbidden", err: failure.Forbidden("not yours"), want: http.StatusForbidden},
		{name: "not found", err: failure.NotFound("room not found"), want: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("already booked"), want: http.StatusConflict},
		{name: "internal error", err: failure.InternalError(errors.New("boom")), want: http.StatusInternalServerError},
		{name: "plain error defaults to internal", err: errors.New("boom"), want: http.StatusInternalServerError},
		{
			name: "wrapped failure keeps its code",
			err:  fmt.Errorf("context: %w", failure.Conflict("already booked")),
			want: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestIsCode(t *testing.T) {
	err := failure.NotFound("booking not found")

	assert.True(t, failure.IsCode(err, http.StatusNotFound))
	assert.False(t, failure.IsCode(err, http.StatusConflict))
}

func TestError(t *testing.T) {
	err := failure.Conflict("room is already booked for this date and time slot")

	assert.Equal(t, "room is already booked for this date and time slot", err.Error())
}
