package dto

import (
	"huddle/internal/domains/room/model"
	"huddle/shared"
	gDto "huddle/shared/dto"
)

type UpdateRoomContactRequest struct {
	ContactPerson string `db:"contact_person" json:"contact_person" validate:"required,max=100"`
}

type RoomResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Capacity      int    `json:"capacity"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	ContactPerson string `json:"contact_person"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.Description = model.Description
	r.Image = model.Image
	r.ContactPerson = model.ContactPerson
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
