/* Copyright (c) 2025 PMO Report contributors
 * SPDX-License-Identifier: BSD-3-Clause */
package jira

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vinicu/pmo-jira-yby/internal/config"
	"github.com/vinicu/pmo-jira-yby/internal/domain"
)

type Client struct {
	baseURL string
	email   string
	token   string
	jql     string
	max     int
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(cfg config.Config, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.JiraBaseURL, "/"),
		email:   cfg.JiraEmail,
		token:   cfg.JiraAPIToken,
		jql:     cfg.JiraJQL,
		max:     cfg.JiraMaxResults,
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
		log:     log,
	}
}

type searchResponse struct {
	Issues []issueRecord `json:"issues"`
}

// issueRecord decodes the handful of fields this pipeline reads; anything
// else the API returns is dropped. A null priority/status/assignee leaves the
// nested struct at its zero value.
type issueRecord struct {
	Key    string `json:"key"`
	Fields struct {
		Summary  string `json:"summary"`
		Priority struct {
			Name string `json:"name"`
		} `json:"priority"`
		Status struct {
			Name string `json:"name"`
		} `json:"status"`
		Assignee struct {
			DisplayName string `json:"displayName"`
		} `json:"assignee"`
	} `json:"fields"`
}

func (c *Client) apiURL(path string, q url.Values) string {
	u := c.baseURL + path
	if len(q) > 0 {
		u = u + "?" + q.Encode()
	}
	return u
}

// SearchIssues runs one JQL search and returns the decoded page. Empty jql
// falls back to the configured default; max is capped at the configured page
// size. Transport failures, non-2xx statuses and decode failures all come
// back as *domain.FetchError — the caller decides whether to degrade.
func (c *Client) SearchIssues(ctx context.Context, jql string, max int) ([]domain.Issue, error) {
	if c.baseURL == "" {
		return nil, &domain.FetchError{Err: errors.New("jira: empty base URL")}
	}
	if jql == "" { jql = c.jql }
	if max <= 0 || max > c.max { max = c.max }

	q := url.Values{}
	q.Set("jql", jql)
	q.Set("maxResults", strconv.Itoa(max))
	u := c.apiURL("/rest/api/3/search", q)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.email, c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, &domain.FetchError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("jira api body=%s", strings.TrimSpace(string(b))),
		}
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	issues := make([]domain.Issue, 0, len(out.Issues))
	for _, r := range out.Issues {
		issues = append(issues, domain.Issue{
			Key:      r.Key,
			Summary:  r.Fields.Summary,
			Priority: r.Fields.Priority.Name,
			Status:   r.Fields.Status.Name,
			Assignee: r.Fields.Assignee.DisplayName,
		})
	}
	c.log.Debug().Int("count", len(issues)).Str("jql", jql).Msg("jira search ok")
	return issues, nil
}
