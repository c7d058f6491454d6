// Package notify provides notification delivery for triggered alerts.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// defaultAPIBaseURL is the Telegram Bot API host; overridable in tests.
const defaultAPIBaseURL = "https://api.telegram.org"

// Config holds Telegram delivery settings.
type Config struct {
	BotToken string // Bot API token
	ChatID   string // Destination chat
}

// LoadConfig loads Telegram configuration from environment variables.
// Both fields empty means notifications are disabled.
func LoadConfig() Config {
	return Config{
		BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		ChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
	}
}

// TelegramNotifier sends triggered-alert messages via the Telegram Bot API.
type TelegramNotifier struct {
	cfg     Config
	baseURL string
	client  *http.Client
}

// NewTelegramNotifier creates a notifier with the given configuration and
// HTTP client.
func NewTelegramNotifier(cfg Config, client *http.Client) *TelegramNotifier {
	return &TelegramNotifier{cfg: cfg, baseURL: defaultAPIBaseURL, client: client}
}

// Notify sends a single message to the configured chat.
func (t *TelegramNotifier) Notify(ctx context.Context, text string) error {
	apiURL := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.cfg.BotToken)
	payload := map[string]string{
		"chat_id":    t.cfg.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// NotifyWithRetry sends a message with exponential backoff retry.
// After the final failed attempt it returns immediately without waiting.
func (t *TelegramNotifier) NotifyWithRetry(ctx context.Context, text string, maxRetries int) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if err := t.Notify(ctx, text); err != nil {
			lastErr = err
			if i == maxRetries {
				break
			}
			backoff := time.Duration(1<<uint(i)) * time.Second
			slog.Warn("Telegram send failed", "attempt", i+1, "max", maxRetries+1, "error", err, "backoff", backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
		return nil
	}
	return lastErr
}

// DefaultMaxRetries is the retry budget used for alert delivery.
const DefaultMaxRetries = 3

// RetryNotifier wraps a TelegramNotifier so that every delivery goes through
// NotifyWithRetry. A transient API failure does not lose the alert.
type RetryNotifier struct {
	inner      *TelegramNotifier
	maxRetries int
}

// NewRetryNotifier creates a RetryNotifier with the given retry budget.
// A negative maxRetries is treated as DefaultMaxRetries.
func NewRetryNotifier(inner *TelegramNotifier, maxRetries int) *RetryNotifier {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	return &RetryNotifier{inner: inner, maxRetries: maxRetries}
}

// Notify delivers the message with exponential backoff retry.
func (r *RetryNotifier) Notify(ctx context.Context, text string) error {
	return r.inner.NotifyWithRetry(ctx, text, r.maxRetries)
}

// NoopNotifier discards all messages; used when Telegram is not configured.
type NoopNotifier struct{}

// Notify discards the message.
func (NoopNotifier) Notify(_ context.Context, _ string) error { return nil }
