package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"brainrot-value-bot/internal/interfaces"
	"brainrot-value-bot/internal/types"
)

// Webhook delivers message embeds to channels by POSTing JSON to
// <base>/<channelID>. The receiving relay owns the actual chat-platform
// session.
type Webhook struct {
	base       string
	httpClient *http.Client
}

var _ interfaces.Notifier = (*Webhook)(nil)

// NewWebhook creates a webhook notifier. An empty base means no relay is
// configured; every send fails, which callers treat as best-effort.
func NewWebhook(base string, timeout time.Duration) *Webhook {
	return &Webhook{
		base: base,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type webhookPayload struct {
	ChannelID string        `json:"channel_id"`
	Embed     types.Message `json:"embed"`
}

// Send posts one embed to one channel.
func (w *Webhook) Send(ctx context.Context, channelID string, msg types.Message) error {
	if w.base == "" {
		return fmt.Errorf("no webhook relay configured")
	}

	body, err := json.Marshal(webhookPayload{ChannelID: channelID, Embed: msg})
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s", w.base, channelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post to channel %s: %w", channelID, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("channel %s: unexpected status %d", channelID, resp.StatusCode)
	}
	return nil
}
