package service

import (
	"context"
	"fmt"

	"classbook/config"
	"classbook/infras/otel"
	"classbook/infras/postgres"
	"classbook/internal/domains/booking/model"
	"classbook/internal/domains/booking/model/dto"
	"classbook/internal/domains/booking/repository"
	"classbook/internal/events"
	"classbook/shared"
	"classbook/shared/cache"
	"classbook/shared/constant"
	gDto "classbook/shared/dto"
	"classbook/shared/failure"
	"classbook/shared/timezone"

	roomModel "classbook/internal/domains/room/model"
	roomRepository "classbook/internal/domains/room/repository"
	slotModel "classbook/internal/domains/timeslot/model"
	slotRepository "classbook/internal/domains/timeslot/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

const (
	msgSlotTaken    = "room is already booked for this date and time slot"
	msgBadReference = "room or time slot no longer exists"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	ListForUser(ctx context.Context) (dto.ListBookingsResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id int64) error
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo       repository.Booking
	roomRepo   roomRepository.Room
	slotRepo   slotRepository.TimeSlot
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	dispatcher events.Dispatcher
}

func New(
	repo repository.Booking,
	roomRepo roomRepository.Room,
	slotRepo slotRepository.TimeSlot,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	dispatcher events.Dispatcher,
) Booking {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		slotRepo:   slotRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		dispatcher: dispatcher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID := shared.ContextUserID(ctx)
	user := shared.ContextUser(ctx)

	booking, err := req.ToModel(userID, user)
	if err != nil {
		log.Error().Err(err).Msg("invalid booking date")

		return res, failure.BadRequestFromString("invalid booking date") // nolint:wrapcheck
	}

	if req.BookingDate < timezone.Today().Format(constant.DateFormat) {
		return res, failure.BadRequestFromString("cannot book a date in the past") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	slot, err := s.slotRepo.Get(ctx, shared.FilterByID(req.SlotID, slotModel.FieldID, slotModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get time slot")

		return res, fmt.Errorf("failed to get time slot: %w", err)
	}

	if slot.ID == 0 {
		return res, failure.NotFound("time slot not found") // nolint:wrapcheck
	}

	// The unique index on (room_id, booking_date, slot_id) is the only
	// arbiter under concurrency. A lost race surfaces here as a conflict.
	id, err := s.repo.InsertReturningID(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, postgres.TranslateError(err, msgSlotTaken, msgBadReference)
	}

	booking.ID = id
	booking.RoomName = room.Name
	booking.StartTime = slot.StartTime
	booking.EndTime = slot.EndTime

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.dispatcher.BookingCreated(c, s.toEvent(c, booking))

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) ListForUser(ctx context.Context) (res dto.ListBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID := shared.ContextUserID(ctx)

	bookings, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID := shared.ContextUserID(ctx)
	role := shared.ContextUserRole(ctx)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.UserID != userID && role != constant.RoleAdmin {
		return failure.Forbidden("you can only cancel your own bookings") // nolint:wrapcheck
	}

	// Admins may clean up bookings of any age, owners only future ones.
	if booking.Status(timezone.Today()) == model.StatusPast && role != constant.RoleAdmin {
		return failure.BadRequestFromString("cannot cancel a past booking") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.dispatcher.BookingCancelled(c, s.toEvent(c, booking))

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.ContextUser(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return err
	}

	if current.ID == 0 {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.BookingDate != "" {
		bookingDate, err := timezone.Parse(constant.DateFormat, req.BookingDate)
		if err != nil {
			return failure.BadRequestFromString("invalid booking date") // nolint:wrapcheck
		}

		updatedFields[model.FieldBookingDate] = bookingDate
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return postgres.TranslateError(err, msgSlotTaken, msgBadReference)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.dispatcher.BookingCancelled(c, s.toEvent(c, booking))

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) toEvent(ctx context.Context, booking model.Booking) events.BookingEvent {
	event := events.BookingEvent{
		BookingID:   booking.ID,
		UserName:    booking.UserName,
		UserEmail:   booking.UserEmail,
		RoomName:    booking.RoomName,
		BookingDate: booking.BookingDate.Format(constant.DateFormat),
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Purpose:     booking.Purpose,
		OccurredAt:  events.Stamp(),
	}

	// A freshly inserted booking has no joined user columns yet.
	if event.UserEmail == "" {
		full, err := s.repo.Get(ctx, shared.FilterByID(booking.ID, model.FieldID, model.TableName))
		if err == nil && full.ID != 0 {
			event.UserName = full.UserName
			event.UserEmail = full.UserEmail
		}
	}

	return event
}
