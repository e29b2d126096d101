package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"classbook/config"
	"classbook/infras/otel/mocks"
	bookingMocks "classbook/internal/domains/booking/mocks"
	"classbook/internal/domains/booking/model"
	"classbook/internal/domains/booking/model/dto"
	"classbook/internal/domains/booking/service"
	roomMocks "classbook/internal/domains/room/mocks"
	roomModel "classbook/internal/domains/room/model"
	slotMocks "classbook/internal/domains/timeslot/mocks"
	slotModel "classbook/internal/domains/timeslot/model"
	eventMocks "classbook/internal/events/mocks"
	cacheMocks "classbook/shared/cache/mocks"
	"classbook/shared/constant"
	gDto "classbook/shared/dto"
	"classbook/shared/failure"
	gModel "classbook/shared/model"
	"classbook/shared/timezone"
)

func authedContext(userID int64, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, role)

	return ctx
}

func upcomingBooking() model.Booking {
	return model.Booking{
		ID:          1,
		UserID:      123,
		RoomID:      10,
		SlotID:      2,
		BookingDate: timezone.Today().AddDate(0, 0, 1),
		Purpose:     "Team meeting",
		RoomName:    "Room A",
		StartTime:   "08:00",
		EndTime:     "09:30",
		UserName:    "Test User",
		UserEmail:   "test@example.com",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "Test User",
			ModifiedBy: "Test User",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockSlotRepo := slotMocks.NewMockTimeSlot(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockBookingRepo, mockRoomRepo, mockSlotRepo, cfg, mockCache, mockOtel, mockDispatcher)

	room := roomModel.Room{ID: 10, Name: "Room A", Capacity: 20}
	slot := slotModel.TimeSlot{ID: 2, StartTime: "08:00", EndTime: "09:30"}

	// Event dispatch and cache invalidation happen on a separate goroutine,
	// so those expectations must tolerate the test finishing first.
	mockDispatcher.EXPECT().
		BookingCreated(gomock.Any(), gomock.Any()).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tomorrow := timezone.Today().AddDate(0, 0, 1).Format(constant.DateFormat)
	yesterday := timezone.Today().AddDate(0, 0, -1).Format(constant.DateFormat)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful booking",
			req: dto.CreateBookingRequest{
				RoomID:      10,
				SlotID:      2,
				BookingDate: tomorrow,
				Purpose:     "Team meeting",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockSlotRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(slot, nil)

				mockBookingRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				// The dispatch goroutine re-reads the booking for the
				// joined user columns.
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingBooking(), nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "malformed booking date",
			req: dto.CreateBookingRequest{
				RoomID:      10,
				SlotID:      2,
				BookingDate: "31-12-2026",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "booking date in the past",
			req: dto.CreateBookingRequest{
				RoomID:      10,
				SlotID:      2,
				BookingDate: yesterday,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room not found",
			req: dto.CreateBookingRequest{
				RoomID:      99,
				SlotID:      2,
				BookingDate: tomorrow,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "time slot not found",
			req: dto.CreateBookingRequest{
				RoomID:      10,
				SlotID:      99,
				BookingDate: tomorrow,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockSlotRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(slotModel.TimeSlot{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "slot already taken",
			req: dto.CreateBookingRequest{
				RoomID:      10,
				SlotID:      2,
				BookingDate: tomorrow,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockSlotRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(slot, nil)

				mockBookingRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "room or slot deleted concurrently",
			req: dto.CreateBookingRequest{
				RoomID:      10,
				SlotID:      2,
				BookingDate: tomorrow,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockSlotRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(slot, nil)

				mockBookingRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: "23503"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := authedContext(123, constant.RoleUser)
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), result.ID)
				assert.Equal(t, "Room A", result.RoomName)
				assert.Equal(t, model.StatusUpcoming, result.Status)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockSlotRepo := slotMocks.NewMockTimeSlot(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockBookingRepo, mockRoomRepo, mockSlotRepo, cfg, mockCache, mockOtel, mockDispatcher)

	mockDispatcher.EXPECT().
		BookingCancelled(gomock.Any(), gomock.Any()).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	pastBooking := upcomingBooking()
	pastBooking.BookingDate = timezone.Today().AddDate(0, 0, -1)

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "owner cancels own booking",
			ctx:  authedContext(123, constant.RoleUser),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingBooking(), nil)

				mockBookingRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "admin cancels another user's booking",
			ctx:  authedContext(999, constant.RoleAdmin),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingBooking(), nil)

				mockBookingRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "admin cancels a past booking",
			ctx:  authedContext(999, constant.RoleAdmin),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pastBooking, nil)

				mockBookingRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "non-owner cannot cancel",
			ctx:  authedContext(999, constant.RoleUser),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "booking not found",
			ctx:  authedContext(123, constant.RoleUser),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "cannot cancel a past booking",
			ctx:  authedContext(123, constant.RoleUser),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pastBooking, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "delete error",
			ctx:  authedContext(123, constant.RoleUser),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingBooking(), nil)

				mockBookingRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Cancel(tt.ctx, 1)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockSlotRepo := slotMocks.NewMockTimeSlot(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockBookingRepo, mockRoomRepo, mockSlotRepo, cfg, mockCache, mockOtel, mockDispatcher)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	newRoomID := int64(11)

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req: dto.UpdateBookingRequest{
				RoomID:      &newRoomID,
				BookingDate: timezone.Today().AddDate(0, 0, 2).Format(constant.DateFormat),
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingBooking(), nil)

				mockBookingRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			req:  dto.UpdateBookingRequest{Purpose: "Changed"},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "malformed booking date",
			req:  dto.UpdateBookingRequest{BookingDate: "not-a-date"},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "update collides with existing booking",
			req: dto.UpdateBookingRequest{
				RoomID: &newRoomID,
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingBooking(), nil)

				mockBookingRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := authedContext(123, constant.RoleAdmin)
			err := svc.Update(ctx, tt.req, 1)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockSlotRepo := slotMocks.NewMockTimeSlot(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockBookingRepo, mockRoomRepo, mockSlotRepo, cfg, mockCache, mockOtel, mockDispatcher)

	mockDispatcher.EXPECT().
		BookingCancelled(gomock.Any(), gomock.Any()).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingBooking(), nil)

				mockBookingRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "delete error",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingBooking(), nil)

				mockBookingRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := authedContext(1, constant.RoleAdmin)
			err := svc.Delete(ctx, 1)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_ListForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockSlotRepo := slotMocks.NewMockTimeSlot(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockBookingRepo, mockRoomRepo, mockSlotRepo, cfg, mockCache, mockOtel, mockDispatcher)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "returns user bookings",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					ListForUser(gomock.Any(), int64(123)).
					Return([]model.Booking{upcomingBooking()}, nil)
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name: "empty list",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					ListForUser(gomock.Any(), int64(123)).
					Return([]model.Booking{}, nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					ListForUser(gomock.Any(), int64(123)).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := authedContext(123, constant.RoleUser)
			result, err := svc.ListForUser(ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result.Bookings, tt.wantLen)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockSlotRepo := slotMocks.NewMockTimeSlot(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockBookingRepo, mockRoomRepo, mockSlotRepo, cfg, mockCache, mockOtel, mockDispatcher)

	// Cache writes happen on a separate goroutine.
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	req := gDto.QueryParams{Limit: 10, Page: 1}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache miss falls back to repository",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockBookingRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockBookingRepo.EXPECT().
					GetAll(gomock.Any(), req, gomock.Any()).
					Return([]model.Booking{upcomingBooking()}, nil)
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockBookingRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockBookingRepo.EXPECT().
					GetAll(gomock.Any(), req, gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := authedContext(1, constant.RoleAdmin)
			result, err := svc.GetAll(ctx, req, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}
