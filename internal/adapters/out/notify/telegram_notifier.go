package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cargo/internal/core/ports"
)

// DefaultTelegramAPIURL is the public Bot API endpoint.
const DefaultTelegramAPIURL = "https://api.telegram.org"

var (
	_ ports.Notifier = (*TelegramNotifier)(nil)

	ErrTelegramTokenIsRequired = errors.New("telegram bot token is required")
)

// TelegramNotifier sends HTML messages through the Telegram Bot API
// sendMessage method. Recipients are chat IDs or @channel usernames.
type TelegramNotifier struct {
	client  *http.Client
	baseURL string
	token   string
}

type telegramSendMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// NewTelegramNotifier uses DefaultTelegramAPIURL when apiURL is empty and
// http.DefaultClient when client is nil. Timeouts come from the caller's
// context.
func NewTelegramNotifier(client *http.Client, apiURL, token string) (*TelegramNotifier, error) {
	if token == "" {
		return nil, ErrTelegramTokenIsRequired
	}
	if apiURL == "" {
		apiURL = DefaultTelegramAPIURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &TelegramNotifier{
		client:  client,
		baseURL: strings.TrimRight(apiURL, "/"),
		token:   token,
	}, nil
}

func (n *TelegramNotifier) Send(ctx context.Context, recipient, text string) error {
	body, err := json.Marshal(telegramSendMessage{
		ChatID:    recipient,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		// The URL carries the bot token; keep it out of the error.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return fmt.Errorf("telegram sendMessage: %w", urlErr.Err)
		}
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	defer resp.Body.Close()

	var result telegramResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&result); err != nil {
		return fmt.Errorf("telegram sendMessage: status %d: %w", resp.StatusCode, err)
	}
	if !result.OK {
		return fmt.Errorf("telegram sendMessage: %d %s", result.ErrorCode, result.Description)
	}

	return nil
}
