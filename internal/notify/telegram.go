package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nikrus/rpsduel-go/internal/model"
)

const defaultTelegramBaseURL = "https://api.telegram.org"

// TelegramNotifier delivers notifications via the Telegram Bot API
// sendMessage method
type TelegramNotifier struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewTelegramNotifier creates a Telegram-backed notifier
func NewTelegramNotifier(token string) *TelegramNotifier {
	return &TelegramNotifier{
		token:   token,
		baseURL: defaultTelegramBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewTelegramNotifierWithBaseURL creates a notifier against a custom API base
// URL (for testing)
func NewTelegramNotifierWithBaseURL(token, baseURL string) *TelegramNotifier {
	n := NewTelegramNotifier(token)
	n.baseURL = baseURL
	return n
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send posts one sendMessage call for the request
func (n *TelegramNotifier) Send(ctx context.Context, req model.NotificationRequest) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID: req.ChatID,
		Text:   req.Text,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read telegram response: %w", err)
	}

	var parsed sendMessageResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}
	if !parsed.OK {
		return fmt.Errorf("telegram sendMessage failed: %s", parsed.Description)
	}
	return nil
}

var _ Notifier = (*TelegramNotifier)(nil)
