package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"classbook/config"
	"classbook/infras/otel/mocks"
	bookingMocks "classbook/internal/domains/booking/mocks"
	slotMocks "classbook/internal/domains/timeslot/mocks"
	"classbook/internal/domains/timeslot/model"
	"classbook/internal/domains/timeslot/model/dto"
	"classbook/internal/domains/timeslot/service"
	cacheMocks "classbook/shared/cache/mocks"
	"classbook/shared/failure"
	gModel "classbook/shared/model"
	"classbook/shared/timezone"
)

func validSlot() model.TimeSlot {
	return model.TimeSlot{
		ID:        2,
		StartTime: "08:00",
		EndTime:   "09:30",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin",
			ModifiedBy: "admin",
		},
	}
}

func TestTimeSlotService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSlotRepo := slotMocks.NewMockTimeSlot(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockSlotRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	// Cache invalidation happens on a separate goroutine.
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreateTimeSlotRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful slot creation",
			req: dto.CreateTimeSlotRequest{
				StartTime: "08:00",
				EndTime:   "09:30",
			},
			setupMock: func() {
				mockSlotRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(2), nil)
			},
			wantErr: false,
		},
		{
			name: "end time before start time",
			req: dto.CreateTimeSlotRequest{
				StartTime: "09:30",
				EndTime:   "08:00",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "end time equal to start time",
			req: dto.CreateTimeSlotRequest{
				StartTime: "08:00",
				EndTime:   "08:00",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "insert error",
			req: dto.CreateTimeSlotRequest{
				StartTime: "10:00",
				EndTime:   "11:30",
			},
			setupMock: func() {
				mockSlotRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(2), result.ID)
			}
		})
	}
}

func TestTimeSlotService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSlotRepo := slotMocks.NewMockTimeSlot(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockSlotRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		req       dto.UpdateTimeSlotRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateTimeSlotRequest{EndTime: "10:00"},
			setupMock: func() {
				mockSlotRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validSlot(), nil)

				mockSlotRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "slot not found",
			req:  dto.UpdateTimeSlotRequest{EndTime: "10:00"},
			setupMock: func() {
				mockSlotRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.TimeSlot{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "new end time not after current start time",
			req:  dto.UpdateTimeSlotRequest{EndTime: "07:00"},
			setupMock: func() {
				mockSlotRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validSlot(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "new start time not before current end time",
			req:  dto.UpdateTimeSlotRequest{StartTime: "11:00"},
			setupMock: func() {
				mockSlotRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validSlot(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, 2)

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

func TestTimeSlotService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSlotRepo := slotMocks.NewMockTimeSlot(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockSlotRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
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
				mockSlotRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockSlotRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "slot not found",
			setupMock: func() {
				mockSlotRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "slot has existing bookings",
			setupMock: func() {
				mockSlotRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), 2)

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
