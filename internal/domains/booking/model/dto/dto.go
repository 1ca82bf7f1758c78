package dto

import (
	"github.com/google/uuid"

	"huddle/internal/domains/booking/model"
	gDto "huddle/shared/dto"
	gModel "huddle/shared/model"
	"huddle/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID      string `json:"room_id"     validate:"required"`
	StartTime   int64  `json:"start_time"  validate:"required,gt=0"`
	EndTime     int64  `json:"end_time"    validate:"required,gtfield=StartTime"`
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

func (c *CreateBookingRequest) ToModel(user string) model.Booking {
	return model.Booking{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		UserID:      user,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		Title:       c.Title,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateBookingResponse struct {
	ID string `json:"id"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	RoomID      string `json:"room_id"`
	UserID      string `json:"user_id"`
	StartTime   int64  `json:"start_time"`
	EndTime     int64  `json:"end_time"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.UserID = model.UserID
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Title = model.Title
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type BookingWithRoomResponse struct {
	BookingResponse
	RoomName     string `json:"room_name"`
	RoomImage    string `json:"room_image"`
	RoomCapacity int    `json:"room_capacity"`
}

func (r *BookingWithRoomResponse) FromModel(model model.BookingWithRoom) {
	r.BookingResponse.FromModel(model.Booking)
	r.RoomName = model.RoomName
	r.RoomImage = model.RoomImage
	r.RoomCapacity = model.RoomCapacity
}

type GetMyBookingsResponse struct {
	Bookings []BookingWithRoomResponse `json:"bookings"`
}

func (r *GetMyBookingsResponse) FromModels(models []model.BookingWithRoom) {
	r.Bookings = make([]BookingWithRoomResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type GetRoomBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetRoomBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
