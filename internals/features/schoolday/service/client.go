// file: internals/features/schoolday/service/client.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"teachereval_backend/internals/configs"
)

/* =========================================================
   HTTP client for the Schoolday LMS API
   ========================================================= */

const clientTimeout = 30 * time.Second

// RosterEntry is one teacher row as Schoolday reports it.
type RosterEntry struct {
	ExternalID string `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	HireDate   string `json:"hire_date"` // YYYY-MM-DD
	Active     bool   `json:"active"`
}

// EvaluationEntry is one per-term evaluation aggregate from Schoolday.
type EvaluationEntry struct {
	TeacherEmail    string          `json:"teacher_email"`
	Semester        string          `json:"semester"`
	Year            int             `json:"year"`
	Overall         float64         `json:"overall"`
	TeachingQuality float64         `json:"teaching_quality"`
	Content         float64         `json:"content"`
	Availability    float64         `json:"availability"`
	ResponseCount   int             `json:"response_count"`
	Breakdown       json.RawMessage `json:"breakdown,omitempty"`
}

type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: configs.SchooldayBaseURL,
		APIKey:  configs.SchooldayAPIKey,
		HTTP:    &http.Client{Timeout: clientTimeout},
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("schoolday: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("schoolday: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// read a slice of the body for the log, upstream errors are opaque
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("schoolday: %s: status %d: %s", path, resp.StatusCode, snippet)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("schoolday: %s: decode: %w", path, err)
	}
	return nil
}

// FetchRoster pulls the full active teacher roster.
func (c *Client) FetchRoster(ctx context.Context) ([]RosterEntry, error) {
	var payload struct {
		Teachers []RosterEntry `json:"teachers"`
	}
	if err := c.get(ctx, "/api/v1/roster", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Teachers, nil
}

// FetchEvaluations pulls per-term evaluation aggregates. Zero year
// means all available terms.
func (c *Client) FetchEvaluations(ctx context.Context, year int) ([]EvaluationEntry, error) {
	q := url.Values{}
	if year > 0 {
		q.Set("year", strconv.Itoa(year))
	}
	var payload struct {
		Evaluations []EvaluationEntry `json:"evaluations"`
	}
	if err := c.get(ctx, "/api/v1/evaluations", q, &payload); err != nil {
		return nil, err
	}
	return payload.Evaluations, nil
}
