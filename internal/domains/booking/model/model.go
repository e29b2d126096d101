package model

import (
	"classbook/shared/constant"
	"classbook/shared/model"
	"fmt"
	"time"

	roomModel "classbook/internal/domains/room/model"
	slotModel "classbook/internal/domains/timeslot/model"
	userModel "classbook/internal/domains/user/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldRoomID      = "room_id"
	FieldSlotID      = "slot_id"
	FieldBookingDate = "booking_date"
	FieldPurpose     = "purpose"
)

const (
	StatusUpcoming = "upcoming"
	StatusToday    = "today"
	StatusPast     = "past"
)

type Booking struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	RoomID      int64     `db:"room_id"`
	SlotID      int64     `db:"slot_id"`
	BookingDate time.Time `db:"booking_date"`
	Purpose     string    `db:"purpose"`
	RoomName    string    `db:"room_name"  table:"rooms"      column:"name"`
	StartTime   string    `db:"start_time" table:"time_slots"`
	EndTime     string    `db:"end_time"   table:"time_slots"`
	UserName    string    `db:"user_name"  table:"users"      column:"name"`
	UserEmail   string    `db:"user_email" table:"users"      column:"email"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return fmt.Sprintf(
		"LEFT JOIN %s ON %s.%s = %s.%s LEFT JOIN %s ON %s.%s = %s.%s LEFT JOIN %s ON %s.%s = %s.%s",
		roomModel.TableName, roomModel.TableName, roomModel.FieldID, TableName, FieldRoomID,
		slotModel.TableName, slotModel.TableName, slotModel.FieldID, TableName, FieldSlotID,
		userModel.TableName, userModel.TableName, userModel.FieldID, TableName, FieldUserID,
	)
}

// Status derives the booking lifecycle state from its date relative to today.
// Dates are compared as calendar days, not instants.
func (b *Booking) Status(today time.Time) string {
	date := b.BookingDate.Format(constant.DateFormat)
	ref := today.Format(constant.DateFormat)

	switch {
	case date > ref:
		return StatusUpcoming
	case date == ref:
		return StatusToday
	default:
		return StatusPast
	}
}
