package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"classbook/infras/otel"
	"classbook/infras/postgres"
	"classbook/internal/domains/room/model"
	"classbook/shared/constant"
	gDto "classbook/shared/dto"
	"classbook/shared/logger"
	gRepo "classbook/shared/repository"
	"context"
	"fmt"
	"time"

	bookingModel "classbook/internal/domains/booking/model"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	InsertReturningID(ctx context.Context, model model.Room) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindAvailable(ctx context.Context, date time.Time, slotID int64, minCapacity int) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindAvailable returns rooms with at least minCapacity seats that have no
// booking for the given date and slot.
func (repo *repositoryImpl) FindAvailable(ctx context.Context, date time.Time, slotID int64, minCapacity int) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.FindAvailable", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(
		`SELECT %s.%s, %s.%s, %s.%s, %s.%s
		FROM %s
		WHERE %s.%s >= :capacity
		AND %s.%s NOT IN (
			SELECT %s FROM %s WHERE %s = :booking_date AND %s = :slot_id
		)
		ORDER BY %s.%s ASC`,
		model.TableName, model.FieldID,
		model.TableName, model.FieldName,
		model.TableName, model.FieldLocation,
		model.TableName, model.FieldCapacity,
		model.TableName,
		model.TableName, model.FieldCapacity,
		model.TableName, model.FieldID,
		bookingModel.FieldRoomID, bookingModel.TableName, bookingModel.FieldBookingDate, bookingModel.FieldSlotID,
		model.TableName, model.FieldName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"capacity":     minCapacity,
		"booking_date": date.Format(constant.DateFormat),
		"slot_id":      slotID,
	}

	var rooms []model.Room

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &rooms, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to find available rooms: %w", err)
	}

	return rooms, nil
}
