package postgres_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"classbook/infras/postgres"
	"classbook/shared/failure"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantMsg  string
		wantCode int
	}{
		{
			name:     "unique violation becomes conflict",
			err:      &pq.Error{Code: "23505"},
			wantMsg:  "slot taken",
			wantCode: http.StatusConflict,
		},
		{
			name:     "foreign key violation becomes conflict",
			err:      &pq.Error{Code: "23503"},
			wantMsg:  "bad reference",
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := postgres.TranslateError(tt.err, "slot taken", "bad reference")

			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestTranslateError_Passthrough(t *testing.T) {
	assert.NoError(t, postgres.TranslateError(nil, "a", "b"))

	plain := errors.New("connection refused")
	assert.Same(t, plain, postgres.TranslateError(plain, "a", "b"))
}
