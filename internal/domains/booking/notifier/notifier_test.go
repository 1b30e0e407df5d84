package notifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	telegramMocks "hotel/infras/telegram/mocks"
	"hotel/internal/domains/booking/notifier"
)

func reservationFixture() notifier.Reservation {
	return notifier.Reservation{
		GuestName:  "Putu Wijaya",
		GuestPhone: "+6281234567890",
		RoomName:   "Sea View",
		RoomType:   "Superior Double",
		CheckIn:    time.Date(2026, 1, 15, 14, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 1, 16, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildReservationMessage(t *testing.T) {
	message := notifier.BuildReservationMessage(reservationFixture())

	expected := "📝 *New Reservation*\n" +
		"\n" +
		"👤 *Name*: Putu Wijaya \n" +
		"📞 *Phone*: +6281234567890 \n" +
		"\n" +
		"✉️ *Room name*: Sea View\n" +
		"\n" +
		"✉️ *Type Room*: Superior Double\n" +
		"\n" +
		"📅 *Check In*: 01/15/2026 02:00 PM\n" +
		"📅 *Check Out*: 01/16/2026 12:00 PM\n"

	assert.Equal(t, expected, message)
}

func TestNotifier_NotifyNewReservation(t *testing.T) {
	tests := []struct {
		name      string
		chatIDs   string
		setupMock func(client *telegramMocks.MockClient)
	}{
		{
			name:    "delivers to every configured chat",
			chatIDs: "111 222",
			setupMock: func(client *telegramMocks.MockClient) {
				client.EXPECT().SendMessage(gomock.Any(), "111", gomock.Any()).Return(nil)
				client.EXPECT().SendMessage(gomock.Any(), "222", gomock.Any()).Return(nil)
			},
		},
		{
			name:    "failed recipient does not stop the rest",
			chatIDs: "111 222",
			setupMock: func(client *telegramMocks.MockClient) {
				client.EXPECT().SendMessage(gomock.Any(), "111", gomock.Any()).Return(errors.New("telegram api responded with status 403"))
				client.EXPECT().SendMessage(gomock.Any(), "222", gomock.Any()).Return(nil)
			},
		},
		{
			name:      "no configured chats sends nothing",
			chatIDs:   "",
			setupMock: func(client *telegramMocks.MockClient) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := telegramMocks.NewMockClient(ctrl)
			tt.setupMock(mockClient)

			cfg := &config.Config{}
			cfg.Telegram.ChatIDs = tt.chatIDs

			n := notifier.New(mockClient, cfg, otelMocks.NewOtel())

			assert.NotPanics(t, func() {
				n.NotifyNewReservation(context.Background(), reservationFixture())
			})
		})
	}
}
