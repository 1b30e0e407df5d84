package model

import (
	"time"

	"github.com/shopspring/decimal"

	"hotel/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldGuestID    = "guest_id"
	FieldRoomID     = "room_id"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldTotalPrice = "total_price"
)

var secondsPerNight = decimal.NewFromInt(86400)

// Booking references its guest and room through nullable columns so the
// reservation record outlives either one. Joined columns carry the guest
// and room read model for listings and notifications.
type Booking struct {
	ID         string          `db:"id"`
	GuestID    *string         `db:"guest_id"`
	RoomID     *string         `db:"room_id"`
	CheckIn    time.Time       `db:"check_in"`
	CheckOut   time.Time       `db:"check_out"`
	TotalPrice decimal.Decimal `db:"total_price"`
	model.Metadata

	GuestFirstName *string `db:"guest_first_name" table:"guests" column:"first_name"`
	GuestLastName  *string `db:"guest_last_name"  table:"guests" column:"last_name"`
	GuestPhone     *string `db:"guest_phone"      table:"guests" column:"phone"`
	RoomName       *string `db:"room_name"        table:"rooms"  column:"name"`
	RoomType       *string `db:"room_type"        table:"rooms"  column:"room_type"`
}

func (b Booking) GetJoinQuery() string {
	return "LEFT JOIN guests ON guests.id = bookings.guest_id LEFT JOIN rooms ON rooms.id = bookings.room_id"
}

// CalculateTotalPrice prices a stay at real-valued nights. A partial night
// costs its exact fraction of the nightly rate, matching the elapsed
// seconds between check-in and check-out.
func CalculateTotalPrice(checkIn, checkOut time.Time, pricePerNight decimal.Decimal) decimal.Decimal {
	seconds := decimal.NewFromFloat(checkOut.Sub(checkIn).Seconds())

	return seconds.Div(secondsPerNight).Mul(pricePerNight)
}
