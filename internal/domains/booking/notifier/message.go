package notifier

import (
	"fmt"

	"hotel/internal/domains/booking/model"
	"hotel/shared/timezone"
)

const reservationMessageTemplate = "📝 *New Reservation*\n" +
	"\n" +
	"👤 *Name*: %s \n" +
	"📞 *Phone*: %s \n" +
	"\n" +
	"✉️ *Room name*: %s\n" +
	"\n" +
	"✉️ *Type Room*: %s\n" +
	"\n" +
	"📅 *Check In*: %s\n" +
	"📅 *Check Out*: %s\n"

// BuildReservationMessage renders the Markdown message sent to staff chats.
// Check-in and check-out reuse the booking form's time format.
func BuildReservationMessage(res Reservation) string {
	return fmt.Sprintf(
		reservationMessageTemplate,
		res.GuestName,
		res.GuestPhone,
		res.RoomName,
		res.RoomType,
		timezone.Format(res.CheckIn, model.ReservationTimeLayout),
		timezone.Format(res.CheckOut, model.ReservationTimeLayout),
	)
}
