package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	guestDto "hotel/internal/domains/guest/model/dto"
	roomModel "hotel/internal/domains/room/model"
	roomDto "hotel/internal/domains/room/model/dto"
	"hotel/shared"
	"hotel/shared/constant"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
)

// CreateBookingRequest carries the booking form fields. ReservationTime
// holds both halves of the stay in one string, "<check-in> - <check-out>".
type CreateBookingRequest struct {
	UserID          string `json:"user_id"         validate:"required,uuid4"`
	RoomID          string `json:"room_id"         validate:"required,uuid4"`
	ReservationTime string `json:"reservationtime" validate:"required"`
}

func (c *CreateBookingRequest) ToModel(checkIn, checkOut time.Time, totalPrice decimal.Decimal, user string) model.Booking {
	guestID := c.UserID
	roomID := c.RoomID

	return model.Booking{
		ID:         uuid.NewString(),
		GuestID:    &guestID,
		RoomID:     &roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: totalPrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID         string  `json:"id"`
	GuestID    *string `json:"guest_id"`
	RoomID     *string `json:"room_id"`
	GuestName  string  `json:"guest_name"`
	GuestPhone string  `json:"guest_phone"`
	RoomName   string  `json:"room_name"`
	RoomType   string  `json:"room_type"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	TotalPrice string  `json:"total_price"`
	CreatedAt  string  `json:"created_at"`
}

func (b *BookingResponse) FromModel(mod model.Booking) {
	b.ID = mod.ID
	b.GuestID = mod.GuestID
	b.RoomID = mod.RoomID
	b.GuestName = joinName(mod.GuestFirstName, mod.GuestLastName)
	b.GuestPhone = deref(mod.GuestPhone)
	b.RoomName = deref(mod.RoomName)
	b.RoomType = deref(mod.RoomType)
	b.CheckIn = mod.CheckIn.Format(constant.DateFormat)
	b.CheckOut = mod.CheckOut.Format(constant.DateFormat)
	b.TotalPrice = mod.TotalPrice.StringFixed(2)
	b.CreatedAt = mod.CreatedAt.Format(constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}

// BookingPageResponse backs the booking form: selectable guests and rooms
// plus the optional preselected room. SelectedRoomID stays null when the
// requested room does not resolve.
type BookingPageResponse struct {
	Guests         []guestDto.GuestResponse `json:"guests"`
	Rooms          []roomDto.RoomResponse   `json:"rooms"`
	RoomTypes      []string                 `json:"room_types"`
	SelectedRoomID *string                  `json:"selected_room_id"`
}

func (b *BookingPageResponse) FromListings(guests []guestModel.Guest, rooms []roomModel.Room) {
	b.Guests = make([]guestDto.GuestResponse, len(guests))
	for i, guest := range guests {
		b.Guests[i].FromModel(guest)
	}

	b.Rooms = make([]roomDto.RoomResponse, len(rooms))
	for i, room := range rooms {
		b.Rooms[i].FromModel(room)
	}
}

func joinName(first, last *string) string {
	name := deref(first)

	if deref(last) != constant.Empty {
		if name != constant.Empty {
			name += " "
		}

		name += deref(last)
	}

	return name
}

func deref(s *string) string {
	if s == nil {
		return constant.Empty
	}

	return *s
}
