package model

import (
	"fmt"

	roomModel "huddle/internal/domains/room/model"
	"huddle/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldUserID      = "user_id"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldTitle       = "title"
	FieldDescription = "description"
)

// Booking has no update path. Changing a reservation means cancelling it and
// creating a new one. Start and end times are epoch milliseconds.
type Booking struct {
	ID          string `db:"id"`
	RoomID      string `db:"room_id"`
	UserID      string `db:"user_id"`
	StartTime   int64  `db:"start_time"`
	EndTime     int64  `db:"end_time"`
	Title       string `db:"title"`
	Description string `db:"description"`
	model.Metadata
}

// BookingWithRoom is the read model for listings that display room details
// next to each reservation.
type BookingWithRoom struct {
	Booking
	RoomName     string `db:"room_name"     column:"name"     table:"rooms"`
	RoomImage    string `db:"room_image"    column:"image"    table:"rooms"`
	RoomCapacity int    `db:"room_capacity" column:"capacity" table:"rooms"`
}

func (BookingWithRoom) GetJoinQuery() string {
	return fmt.Sprintf("JOIN %s ON %s.%s = %s.%s",
		roomModel.TableName,
		roomModel.TableName, roomModel.FieldID,
		TableName, FieldRoomID,
	)
}
