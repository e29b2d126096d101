package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"classbook/infras/otel"
	"classbook/infras/postgres"
	"classbook/internal/domains/booking/model"
	"classbook/shared/constant"
	gDto "classbook/shared/dto"
	"classbook/shared/logger"
	gRepo "classbook/shared/repository"
	"context"
	"fmt"
)

const listForUserQuery = `
SELECT bookings.id, bookings.user_id, bookings.room_id, bookings.slot_id,
	bookings.booking_date, bookings.purpose, bookings.created_by, bookings.modified_by,
	rooms.name AS room_name, time_slots.start_time, time_slots.end_time,
	users.name AS user_name, users.email AS user_email
FROM bookings
LEFT JOIN rooms ON rooms.id = bookings.room_id
LEFT JOIN time_slots ON time_slots.id = bookings.slot_id
LEFT JOIN users ON users.id = bookings.user_id
WHERE bookings.user_id = :user_id
ORDER BY bookings.booking_date DESC, time_slots.start_time ASC`

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertReturningID(ctx context.Context, model model.Booking) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListForUser(ctx context.Context, userID int64) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListForUser returns every booking of the given user, newest date first and
// earliest slot first within the same date.
func (repo *repositoryImpl) ListForUser(ctx context.Context, userID int64) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ListForUser", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, listForUserQuery)

	args := map[string]any{
		"user_id": userID,
	}

	var bookings []model.Booking

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, listForUserQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return bookings, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &bookings, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return bookings, fmt.Errorf("failed to list bookings for user: %w", err)
	}

	return bookings, nil
}
