// Package alert forwards operator alerts to a Slack incoming webhook.
//
// This is separate from the admin-visible notification log: the log records
// storefront activity for the boutique owner, while alerts ping the
// operations channel about the same events (and about failures).
//
//	alert.SetSlackWebhook(config.Get("SLACK_WEBHOOK_URL", ""))
//	alert.Slack("New Order: Sara - 2 items (5,000 EGP)")
package alert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Attachment is a single Slack message attachment block.
type Attachment struct {
	Color  string `json:"color,omitempty"` // "good" | "warning" | "danger"
	Title  string `json:"title,omitempty"`
	Text   string `json:"text,omitempty"`
	Footer string `json:"footer,omitempty"`
}

type payload struct {
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

var webhookURL string

// SetSlackWebhook sets the Slack incoming webhook URL. An empty URL
// disables alerting, so Slack becomes a no-op.
func SetSlackWebhook(url string) { webhookURL = url }

// Enabled reports whether a webhook is configured.
func Enabled() bool { return webhookURL != "" }

// Slack posts a message to the configured webhook.
func Slack(text string, attachments ...Attachment) error {
	if webhookURL == "" {
		return nil
	}

	raw, err := json.Marshal(payload{Text: text, Attachments: attachments})
	if err != nil {
		return fmt.Errorf("alert: slack marshal: %w", err)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Post(webhookURL, "application/json", bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("alert: slack post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("alert: slack returned HTTP %d", resp.StatusCode)
	}
	return nil
}
