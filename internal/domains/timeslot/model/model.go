package model

import "classbook/shared/model"

const (
	TableName  = "time_slots"
	EntityName = "timeslot"

	FieldID        = "id"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
)

type TimeSlot struct {
	ID        int64  `db:"id"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	model.Metadata
}
