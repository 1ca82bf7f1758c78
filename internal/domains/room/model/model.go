package model

import "huddle/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldName          = "name"
	FieldCapacity      = "capacity"
	FieldDescription   = "description"
	FieldImage         = "image"
	FieldContactPerson = "contact_person"
)

// Room is reference data: rows are created only by the seed operation and
// contact_person is the single mutable column.
type Room struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Capacity      int    `db:"capacity"`
	Description   string `db:"description"`
	Image         string `db:"image"`
	ContactPerson string `db:"contact_person"`
	model.Metadata
}
