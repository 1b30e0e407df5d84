package model

import (
	"github.com/shopspring/decimal"

	"hotel/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldName          = "name"
	FieldRoomType      = "room_type"
	FieldDescription   = "description"
	FieldPricePerNight = "price_per_night"
	FieldImage         = "image"
	FieldIsAvailable   = "is_available"
)

const (
	RoomTypeStandardDouble    = "Standard Double"
	RoomTypeStandardTwin      = "Standard Twin"
	RoomTypeSuperiorDouble    = "Superior Double"
	RoomTypeSuperiorTwin      = "Superior Twin"
	RoomTypeJuniorSuiteDouble = "Junior Suite Double"
	RoomTypeJuniorSuiteTwin   = "Junior Suite Twin"

	RoomTypeDefault = RoomTypeStandardTwin
)

// RoomTypes is the fixed set of bookable room categories.
var RoomTypes = []string{
	RoomTypeStandardDouble,
	RoomTypeStandardTwin,
	RoomTypeSuperiorDouble,
	RoomTypeSuperiorTwin,
	RoomTypeJuniorSuiteDouble,
	RoomTypeJuniorSuiteTwin,
}

type Room struct {
	ID            string          `db:"id"`
	RoomNumber    string          `db:"room_number"`
	Name          string          `db:"name"`
	RoomType      string          `db:"room_type"`
	Description   string          `db:"description"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	Image         string          `db:"image"`
	IsAvailable   bool            `db:"is_available"`
	model.Metadata
}
