package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/telegram"
	"hotel/shared/constant"
)

// Reservation is the notification payload for one confirmed booking.
type Reservation struct {
	GuestName  string
	GuestPhone string
	RoomName   string
	RoomType   string
	CheckIn    time.Time
	CheckOut   time.Time
}

// Notifier announces new reservations to the configured staff chats.
// Delivery is best effort: a failed recipient is logged and skipped, and
// the booking pipeline never observes a delivery error.
type Notifier interface {
	NotifyNewReservation(ctx context.Context, res Reservation)
}

type notifierImpl struct {
	client telegram.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client telegram.Client, cfg *config.Config, otel otel.Otel) Notifier {
	return &notifierImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (n *notifierImpl) NotifyNewReservation(ctx context.Context, res Reservation) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".NotifyNewReservation")
	defer scope.End()

	chatIDs := strings.Fields(n.cfg.Telegram.ChatIDs)
	if len(chatIDs) == 0 {
		log.Warn().Msg("no telegram chat ids configured, skipping reservation notification")

		return
	}

	text := BuildReservationMessage(res)

	for _, chatID := range chatIDs {
		if err := n.client.SendMessage(ctx, chatID, text); err != nil {
			log.Error().Err(err).Str("chatID", chatID).Msg("failed to send reservation notification")

			continue
		}

		log.Info().Str("chatID", chatID).Msg("reservation notification sent")
	}
}
