// Package notify sends confirmation mail through the external mail relay.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"custodia/pkg/platform/sentinel"
)

// Client posts mail to the relay collaborator. A failed send maps to
// sentinel.ErrUnavailable so the orchestrator can abort the create before any
// persistent state change.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type mailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendMail delivers one message to the given address.
func (c *Client) SendMail(ctx context.Context, address, subject, body string) error {
	payload, err := json.Marshal(mailPayload{To: address, Subject: subject, Body: body})
	if err != nil {
		return fmt.Errorf("encode mail: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/mail", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send mail: %w", sentinel.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("send mail: unexpected status %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}
	return nil
}
