// Package notifier turns a report into a chat message and posts it to an
// incoming webhook.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rotisserie/eris"
)

// Payload is the incoming-webhook body.
type Payload struct {
	Text      string `json:"text"`
	Username  string `json:"username"`
	IconEmoji string `json:"icon_emoji"`
}

// Slack posts messages to one webhook. Delivery is attempted once.
type Slack struct {
	WebhookURL string
	Username   string
	IconEmoji  string
	Client     *http.Client
}

// Send posts text. Anything but HTTP 200 is an error carrying status and body.
func (s Slack) Send(ctx context.Context, text string) error {
	body, err := json.Marshal(Payload{Text: text, Username: s.Username, IconEmoji: s.IconEmoji})
	if err != nil {
		return eris.Wrap(err, "marshal payload")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return eris.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return eris.Wrap(err, "post webhook")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return eris.Errorf("status=%d body=%s", resp.StatusCode, msg)
	}
	return nil
}
