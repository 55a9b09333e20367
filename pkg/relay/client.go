// Package relay delivers outbound texts through a user-supplied webhook
// endpoint (e.g. a Twilio function). Delivery is best effort: callers treat
// any failure as a dropped message, never as a fault.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts {to, body} JSON payloads to the configured webhook
type Client struct {
	httpClient *http.Client
}

// NewClient creates a relay client with the given request timeout
func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

// smsPayload is the wire format the webhook expects
type smsPayload struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// Send posts one text message. A missing endpoint or destination, any
// transport error and any non-2xx response all map to an error; callers
// log and move on.
func (c *Client) Send(ctx context.Context, endpoint, to, body string) error {
	if endpoint == "" || to == "" {
		return fmt.Errorf("relay not configured")
	}

	payload, err := json.Marshal(smsPayload{To: to, Body: body})
	if err != nil {
		return fmt.Errorf("marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post to relay: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body) // drain for connection reuse

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}
	return nil
}
