package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Notification is a message for one user over one channel. Payload is
// provider-defined template data.
type Notification struct {
	UserID  uuid.UUID      `json:"user_id"`
	Channel string         `json:"channel"` // "email" or "sms"
	Subject string         `json:"subject"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Client dispatches notifications to the external provider. Callers treat
// dispatch as fire-and-forget: failures are logged by the caller, never
// allowed to fail the business transition that triggered them.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Notify(ctx context.Context, n Notification) error {
	if c.baseURL == "" {
		// Unconfigured in dev; nothing to deliver to.
		return nil
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/notifications", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status code %d from notification provider", resp.StatusCode)
	}

	return nil
}
