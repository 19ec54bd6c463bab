package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"custodia/pkg/platform/sentinel"
)

// SubjectClient resolves subjects and actor scopes against the external
// subject directory.
type SubjectClient struct {
	baseURL string
	http    *http.Client
}

func NewSubjectClient(baseURL string, timeout time.Duration) *SubjectClient {
	return &SubjectClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type subjectResponse struct {
	StudyName string `json:"studyName"`
}

// StudyOf resolves the study a subject belongs to. Unknown subjects map to
// sentinel.ErrNotFound.
func (c *SubjectClient) StudyOf(ctx context.Context, subjectID string) (string, error) {
	endpoint := c.baseURL + "/subjects/" + url.PathEscape(subjectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build subject request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("resolve subject: %w", sentinel.ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", sentinel.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("resolve subject: unexpected status %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}

	var body subjectResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode subject: %w", err)
	}
	return body.StudyName, nil
}

type subjectsResponse struct {
	SubjectIDs []string `json:"subjectIds"`
}

// SubjectsFor lists the subjects an actor may operate on.
func (c *SubjectClient) SubjectsFor(ctx context.Context, actorEmail string) ([]string, error) {
	endpoint := c.baseURL + "/actors/" + url.PathEscape(actorEmail) + "/subjects"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build actor subjects request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list actor subjects: %w", sentinel.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list actor subjects: unexpected status %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}

	var body subjectsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode actor subjects: %w", err)
	}
	return body.SubjectIDs, nil
}
