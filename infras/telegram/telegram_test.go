package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/infras/telegram"
)

func newTestClient(baseURL string) telegram.Client {
	cfg := &config.Config{}
	cfg.Telegram.APIBaseURL = baseURL
	cfg.Telegram.BotToken = "test-token"
	cfg.Telegram.TimeoutSeconds = 2

	return telegram.New(cfg, otelMocks.NewOtel())
}

func TestClient_SendMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.SendMessage(context.Background(), "12345", "📝 *New Reservation*")
	require.NoError(t, err)

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "12345", gotBody["chat_id"])
	assert.Equal(t, "📝 *New Reservation*", gotBody["text"])
	assert.Equal(t, "Markdown", gotBody["parse_mode"])
}

func TestClient_SendMessage_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"ok":false,"description":"bot was blocked by the user"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.SendMessage(context.Background(), "12345", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestClient_SendMessage_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)

	err := client.SendMessage(context.Background(), "12345", "hello")
	require.Error(t, err)
}
