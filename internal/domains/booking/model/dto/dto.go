package dto

import (
	"classbook/internal/domains/booking/model"
	"classbook/shared"
	"classbook/shared/constant"
	gDto "classbook/shared/dto"
	gModel "classbook/shared/model"
	"classbook/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID      int64  `json:"room_id"      validate:"required"`
	SlotID      int64  `json:"slot_id"      validate:"required"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	Purpose     string `json:"purpose"      validate:"omitempty,max=255"`
}

func (c *CreateBookingRequest) ToModel(userID int64, user string) (model.Booking, error) {
	bookingDate, err := timezone.Parse(constant.DateFormat, c.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		UserID:      userID,
		RoomID:      c.RoomID,
		SlotID:      c.SlotID,
		BookingDate: bookingDate,
		Purpose:     c.Purpose,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	RoomID      *int64 `db:"room_id"      json:"room_id" validate:"omitempty"`
	SlotID      *int64 `db:"slot_id"      json:"slot_id" validate:"omitempty"`
	BookingDate string `json:"booking_date" validate:"omitempty,datetime=2006-01-02"`
	Purpose     string `db:"purpose"      json:"purpose" validate:"omitempty,max=255"`
}

type BookingResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	RoomID      int64  `json:"room_id"`
	SlotID      int64  `json:"slot_id"`
	RoomName    string `json:"room_name"`
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	UserName    string `json:"user_name"`
	Purpose     string `json:"purpose"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.RoomID = mod.RoomID
	r.SlotID = mod.SlotID
	r.RoomName = mod.RoomName
	r.BookingDate = mod.BookingDate.Format(constant.DateFormat)
	r.StartTime = mod.StartTime
	r.EndTime = mod.EndTime
	r.UserName = mod.UserName
	r.Purpose = mod.Purpose
	r.Status = mod.Status(timezone.Today())
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *ListBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
