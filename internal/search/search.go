// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the PatentsView API for prior-art candidates.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/patent-scout/pkg/types"
)

// patentFields lists the fields requested from the API.
const patentFields = `["patent_id","patent_title","patent_abstract","patent_date"]`

// Query holds the search parameters for one request.
type Query struct {
	// Text is free text searched across patent title and abstract. Used
	// when Keywords is empty.
	Text string

	// Keywords are joined with spaces into the search phrase; they take
	// precedence over Text.
	Keywords []string

	// DateTo optionally bounds the grant date from above (YYYY-MM-DD).
	// The lower bound comes from SearchConfig.MinDate.
	DateTo string
}

// Phrase returns the text actually sent to the API.
func (q Query) Phrase() string {
	if len(q.Keywords) > 0 {
		return strings.Join(q.Keywords, " ")
	}
	return q.Text
}

// Client issues requests against the PatentsView patent endpoint. One
// request per Search call, no retries, no caching.
type Client struct {
	httpClient *http.Client
	cfg        types.SearchConfig
}

// NewClient builds a Client from the search configuration.
func NewClient(cfg types.SearchConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

// Search performs one GET against the configured endpoint and returns the
// matching patents in API order. Failures of any kind wrap
// types.ErrSearchAPI.
func (c *Client) Search(ctx context.Context, query Query) ([]types.Patent, error) {
	q := buildQuery(query, c.cfg.MinDate)
	if q == "" {
		return nil, fmt.Errorf("empty query: %w", types.ErrSearchAPI)
	}

	maxResults := c.cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}
	if maxResults > 1000 {
		maxResults = 1000
	}

	params := url.Values{
		"q": {q},
		"f": {patentFields},
		"o": {fmt.Sprintf(`{"size":%d}`, maxResults)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %v: %w", err, types.ErrSearchAPI)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("X-Api-Key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("PatentsView request: %v: %w", err, types.ErrSearchAPI)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			return nil, fmt.Errorf("PatentsView rate limit exceeded, retry after %s seconds: %w",
				retryAfter, types.ErrSearchAPI)
		}
		return nil, fmt.Errorf("PatentsView rate limit exceeded (HTTP 429): %w", types.ErrSearchAPI)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PatentsView returned HTTP %d: %w", resp.StatusCode, types.ErrSearchAPI)
	}

	var body patentsViewResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parsing PatentsView response: %v: %w", err, types.ErrSearchAPI)
	}

	if body.Error {
		return nil, fmt.Errorf("PatentsView reported an error in the response body: %w", types.ErrSearchAPI)
	}

	patents := make([]types.Patent, 0, len(body.Patents))
	for _, p := range body.Patents {
		patents = append(patents, types.Patent{
			ID:       p.PatentID,
			Title:    p.PatentTitle,
			Abstract: p.PatentAbstract,
			Date:     p.PatentDate,
		})
	}
	return patents, nil
}

// buildQuery constructs the JSON q parameter: a date floor AND a _text_any
// match of the search phrase against patent_title or patent_abstract.
func buildQuery(q Query, minDate string) string {
	phrase := q.Phrase()
	if phrase == "" {
		return ""
	}

	conditions := []string{
		fmt.Sprintf(`{"_gte":{"patent_date":"%s"}}`, escapeJSON(minDate)),
		fmt.Sprintf(`{"_or":[{"_text_any":{"patent_title":"%s"}},{"_text_any":{"patent_abstract":"%s"}}]}`,
			escapeJSON(phrase), escapeJSON(phrase)),
	}

	if q.DateTo != "" {
		conditions = append(conditions,
			fmt.Sprintf(`{"_lte":{"patent_date":"%s"}}`, escapeJSON(q.DateTo)))
	}

	return fmt.Sprintf(`{"_and":[%s]}`, strings.Join(conditions, ","))
}

// escapeJSON escapes a string for safe inclusion in a JSON string value.
func escapeJSON(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// PatentsView API JSON structures.
type patentsViewResponse struct {
	Error   bool                `json:"error"`
	Patents []patentsViewPatent `json:"patents"`
	Count   int                 `json:"count"`
	Total   int                 `json:"total_patent_count"`
}

type patentsViewPatent struct {
	PatentID       string `json:"patent_id"`
	PatentTitle    string `json:"patent_title"`
	PatentAbstract string `json:"patent_abstract"`
	PatentDate     string `json:"patent_date"`
}
