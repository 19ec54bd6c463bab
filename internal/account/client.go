package account

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"custodia/pkg/platform/sentinel"
)

// Client calls the identity collaborator's account lifecycle API. Each call
// is a single idempotent PUT.
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

type statusPayload struct {
	Status Status `json:"status"`
}

// SetAccountStatus marks the subject's account with the given status.
func (c *Client) SetAccountStatus(ctx context.Context, subjectID string, status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid account status %q", status)
	}

	body, err := json.Marshal(statusPayload{Status: status})
	if err != nil {
		return fmt.Errorf("encode account status: %w", err)
	}

	endpoint := c.baseURL + "/accounts/" + url.PathEscape(subjectID) + "/status"
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build account status request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("set account status: %w", sentinel.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("set account status: unexpected status %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}
	return nil
}
