package model

import (
	"strings"
	"time"

	"hotel/shared/failure"
	"hotel/shared/timezone"
)

// ReservationTimeLayout is the 12-hour format the booking form submits,
// e.g. "01/15/2026 02:00 PM". Times are read in the application timezone.
const ReservationTimeLayout = "01/02/2006 03:04 PM"

// ReservationSpanDelimiter separates the check-in and check-out halves.
const ReservationSpanDelimiter = " - "

// ParseReservationSpan splits "<check-in> - <check-out>" and parses both
// halves with ReservationTimeLayout. The delimiter must occur exactly once
// and no alternate time formats are accepted.
func ParseReservationSpan(span string) (checkIn, checkOut time.Time, err error) {
	parts := strings.Split(span, ReservationSpanDelimiter)
	if len(parts) != 2 {
		return checkIn, checkOut, failure.BadRequestFromString("reservation time must be \"<check-in> - <check-out>\"")
	}

	checkIn, err = timezone.Parse(ReservationTimeLayout, parts[0])
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check-in does not match format MM/DD/YYYY hh:mm AM/PM")
	}

	checkOut, err = timezone.Parse(ReservationTimeLayout, parts[1])
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check-out does not match format MM/DD/YYYY hh:mm AM/PM")
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.BadRequestFromString("check-out must be after check-in")
	}

	return checkIn, checkOut, nil
}
