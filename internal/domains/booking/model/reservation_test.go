package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel/internal/domains/booking/model"
	"hotel/shared/failure"
	"hotel/shared/timezone"
)

func TestParseReservationSpan(t *testing.T) {
	tests := []struct {
		name    string
		span    string
		wantErr bool
	}{
		{
			name: "valid span",
			span: "01/15/2026 02:00 PM - 01/16/2026 02:00 PM",
		},
		{
			name: "valid same-day span",
			span: "01/15/2026 08:00 AM - 01/15/2026 08:00 PM",
		},
		{
			name:    "missing delimiter",
			span:    "01/15/2026 02:00 PM 01/16/2026 02:00 PM",
			wantErr: true,
		},
		{
			name:    "duplicated delimiter",
			span:    "01/15/2026 02:00 PM - 01/16/2026 02:00 PM - 01/17/2026 02:00 PM",
			wantErr: true,
		},
		{
			name:    "24-hour time rejected",
			span:    "01/15/2026 14:00 PM - 01/16/2026 02:00 PM",
			wantErr: true,
		},
		{
			name:    "ISO date rejected",
			span:    "2026-01-15 02:00 PM - 2026-01-16 02:00 PM",
			wantErr: true,
		},
		{
			name:    "check-out equals check-in",
			span:    "01/15/2026 02:00 PM - 01/15/2026 02:00 PM",
			wantErr: true,
		},
		{
			name:    "check-out before check-in",
			span:    "01/16/2026 02:00 PM - 01/15/2026 02:00 PM",
			wantErr: true,
		},
		{
			name:    "empty string",
			span:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkIn, checkOut, err := model.ParseReservationSpan(tt.span)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.True(t, checkOut.After(checkIn))
		})
	}
}

func TestParseReservationSpan_RoundTrip(t *testing.T) {
	span := "12/25/2026 03:30 PM - 12/27/2026 11:00 AM"

	checkIn, checkOut, err := model.ParseReservationSpan(span)
	assert.NoError(t, err)

	rebuilt := timezone.Format(checkIn, model.ReservationTimeLayout) +
		model.ReservationSpanDelimiter +
		timezone.Format(checkOut, model.ReservationTimeLayout)

	assert.Equal(t, span, rebuilt)
}
