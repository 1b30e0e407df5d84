package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"hotel/internal/domains/booking/model"
)

func TestCalculateTotalPrice(t *testing.T) {
	checkIn := time.Date(2026, 1, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		checkOut      time.Time
		pricePerNight string
		want          string
	}{
		{
			name:          "one full night",
			checkOut:      checkIn.Add(24 * time.Hour),
			pricePerNight: "100.00",
			want:          "100.00",
		},
		{
			name:          "quarter night",
			checkOut:      checkIn.Add(6 * time.Hour),
			pricePerNight: "100.00",
			want:          "25.00",
		},
		{
			name:          "two and a half nights",
			checkOut:      checkIn.Add(60 * time.Hour),
			pricePerNight: "150.00",
			want:          "375.00",
		},
		{
			name:          "ninety minutes",
			checkOut:      checkIn.Add(90 * time.Minute),
			pricePerNight: "160.00",
			want:          "10.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := decimal.RequireFromString(tt.pricePerNight)

			total := model.CalculateTotalPrice(checkIn, tt.checkOut, price)

			assert.Equal(t, tt.want, total.StringFixed(2))
		})
	}
}
