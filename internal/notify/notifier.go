package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// BoardChangedEvent describes a change to a project's board: a step attached,
// detached or moved, a card touched, a member added or removed.
type BoardChangedEvent struct {
	ProjectID uint        `json:"project_id"`
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
}

// Notifier pushes board changes to an external sink.
type Notifier interface {
	NotifyBoardChanged(ctx context.Context, e BoardChangedEvent) error
}

// NoopNotifier is used when no webhook is configured.
type NoopNotifier struct{}

func (NoopNotifier) NotifyBoardChanged(context.Context, BoardChangedEvent) error { return nil }

// WebhookNotifier POSTs each event as JSON to a configured URL.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *WebhookNotifier) NotifyBoardChanged(ctx context.Context, e BoardChangedEvent) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded %d", resp.StatusCode)
	}
	return nil
}
