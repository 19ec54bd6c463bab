// Package directory holds the read-only clients for the study registry and
// the subject directory, plus the cache that sits in front of policy lookups.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"custodia/internal/deletion"
	"custodia/pkg/platform/sentinel"
)

// PolicyClient looks up a study's deletion policy flags from the external
// study registry.
type PolicyClient struct {
	baseURL string
	http    *http.Client
}

func NewPolicyClient(baseURL string, timeout time.Duration) *PolicyClient {
	return &PolicyClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// StudyPolicy fetches the deletion policy for a study. An unknown study maps
// to sentinel.ErrNotFound; transport or server failures map to
// sentinel.ErrUnavailable.
func (c *PolicyClient) StudyPolicy(ctx context.Context, studyName string) (deletion.StudyPolicy, error) {
	endpoint := c.baseURL + "/studies/" + url.PathEscape(studyName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return deletion.StudyPolicy{}, fmt.Errorf("build study policy request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return deletion.StudyPolicy{}, fmt.Errorf("get study policy: %w", sentinel.ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return deletion.StudyPolicy{}, sentinel.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return deletion.StudyPolicy{}, fmt.Errorf("get study policy: unexpected status %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}

	var policy deletion.StudyPolicy
	if err := json.NewDecoder(resp.Body).Decode(&policy); err != nil {
		return deletion.StudyPolicy{}, fmt.Errorf("decode study policy: %w", err)
	}
	return policy, nil
}
