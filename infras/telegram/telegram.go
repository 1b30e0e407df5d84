package telegram

//go:generate go run go.uber.org/mock/mockgen -source=./telegram.go -destination=./mocks/telegram_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
)

const (
	parseModeMarkdown = "Markdown"
)

// Client delivers messages through the Telegram Bot API.
type Client interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type clientImpl struct {
	baseURL    string
	botToken   string
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Client {
	return &clientImpl{
		baseURL:  cfg.Telegram.APIBaseURL,
		botToken: cfg.Telegram.BotToken,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Telegram.TimeoutSeconds) * time.Second,
		},
		otel: otl,
	}
}

// SendMessage posts a Markdown-formatted message to a single chat. The call is
// bounded by the configured client timeout; a non-2xx response is an error.
func (c *clientImpl) SendMessage(ctx context.Context, chatID, text string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".telegram.SendMessage")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("telegram.chat_id", chatID)

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseModeMarkdown,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal sendMessage payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.botToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create sendMessage request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Telegram API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, string(body))
	}

	log.Debug().Str("chatID", chatID).Msg("Telegram message delivered")

	return nil
}
