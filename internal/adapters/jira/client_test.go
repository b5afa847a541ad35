package jira

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinicu/pmo-jira-yby/internal/config"
	"github.com/vinicu/pmo-jira-yby/internal/domain"
)

func testConfig(baseURL string) config.Config {
	return config.Config{
		JiraBaseURL:    baseURL,
		JiraEmail:      "bot@example.com",
		JiraAPIToken:   "token-123",
		JiraJQL:        "status != Done ORDER BY priority DESC",
		JiraMaxResults: 100,
		HTTPTimeout:    2 * time.Second,
	}
}

func TestSearchIssues_DecodesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/search", r.URL.Path)
		assert.Equal(t, "status != Done ORDER BY priority DESC", r.URL.Query().Get("jql"))
		assert.Equal(t, "100", r.URL.Query().Get("maxResults"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "bot@example.com", user)
		assert.Equal(t, "token-123", pass)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"issues": [
				{"key": "PMO-1", "fields": {"summary": "Fix login", "priority": {"name": "Highest"}, "status": {"name": "In Progress"}, "assignee": {"displayName": "Ana"}}},
				{"key": "PMO-2", "fields": {"summary": "Docs", "priority": null, "status": {"name": "Done"}}}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), zerolog.Nop())
	issues, err := c.SearchIssues(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, issues, 2)

	assert.Equal(t, domain.Issue{Key: "PMO-1", Summary: "Fix login", Priority: "Highest", Status: "In Progress", Assignee: "Ana"}, issues[0])
	// null priority and absent assignee decode to empty labels
	assert.Equal(t, domain.Issue{Key: "PMO-2", Summary: "Docs", Status: "Done"}, issues[1])
}

func TestSearchIssues_NonOKStatusIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), zerolog.Nop())
	_, err := c.SearchIssues(context.Background(), "", 0)
	require.Error(t, err)

	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusTooManyRequests, fe.Status)
}

func TestSearchIssues_BadBodyIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), zerolog.Nop())
	_, err := c.SearchIssues(context.Background(), "", 0)

	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Zero(t, fe.Status)
}

func TestSearchIssues_EmptyBaseURL(t *testing.T) {
	c := NewClient(testConfig(""), zerolog.Nop())
	_, err := c.SearchIssues(context.Background(), "", 0)

	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
}

func TestSearchIssues_CapsMaxResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("maxResults"))
		_, _ = w.Write([]byte(`{"issues": []}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), zerolog.Nop())
	issues, err := c.SearchIssues(context.Background(), "", 500)
	require.NoError(t, err)
	assert.Empty(t, issues)
}
