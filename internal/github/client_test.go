package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankfium/personal-site/internal/domain"
)

func setupTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(WithBaseURL(server.URL), WithUserAgent("test-agent"))
	return client, server
}

func TestClient_ListUserRepos(t *testing.T) {
	client, server := setupTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/acme/repos", r.URL.Path)
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "name": "old-public", "updated_at": "2024-01-01T00:00:00Z", "private": false, "archived": false, "stargazers_count": 3},
			{"id": 2, "name": "secret", "updated_at": "2024-06-01T00:00:00Z", "private": true, "archived": false},
			{"id": 3, "name": "new-public", "updated_at": "2024-05-01T00:00:00Z", "private": false, "archived": false},
			{"id": 4, "name": "retired", "updated_at": "2024-07-01T00:00:00Z", "private": false, "archived": true}
		]`))
	})
	defer server.Close()

	repos, err := client.ListUserRepos(context.Background(), "acme")
	require.NoError(t, err)

	require.Len(t, repos, 2)
	assert.Equal(t, "new-public", repos[0].Name)
	assert.Equal(t, "old-public", repos[1].Name)
	assert.Equal(t, 3, repos[1].StargazersCount)
	for _, repo := range repos {
		assert.False(t, repo.Private)
		assert.False(t, repo.Archived)
	}
}

func TestClient_ListUserRepos_StableSortOnEqualTimestamps(t *testing.T) {
	client, server := setupTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "name": "first", "updated_at": "2024-03-01T00:00:00Z"},
			{"id": 2, "name": "second", "updated_at": "2024-03-01T00:00:00Z"},
			{"id": 3, "name": "third", "updated_at": "2024-03-01T00:00:00Z"}
		]`))
	})
	defer server.Close()

	repos, err := client.ListUserRepos(context.Background(), "acme")
	require.NoError(t, err)

	require.Len(t, repos, 3)
	assert.Equal(t, "first", repos[0].Name)
	assert.Equal(t, "second", repos[1].Name)
	assert.Equal(t, "third", repos[2].Name)
}

func TestClient_ListUserRepos_EmptyResult(t *testing.T) {
	client, server := setupTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	defer server.Close()

	repos, err := client.ListUserRepos(context.Background(), "acme")
	require.NoError(t, err)
	assert.NotNil(t, repos)
	assert.Empty(t, repos)
}

func TestClient_ListUserRepos_UpstreamFailure(t *testing.T) {
	client, server := setupTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "rate limit exceeded"}`))
	})
	defer server.Close()

	_, err := client.ListUserRepos(context.Background(), "acme")
	require.Error(t, err)
	assert.True(t, domain.IsUpstreamFailure(err))
}

func TestClient_ListUserRepos_EmptyUsername(t *testing.T) {
	client := NewClient()

	_, err := client.ListUserRepos(context.Background(), "")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err))
}

func TestClient_GetReadme(t *testing.T) {
	const text = "# Hello\n\nA readme with UTF-8: héllo wörld ✓\n"

	// GitHub returns base64 wrapped with newlines
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	wrapped := encoded[:10] + "\n" + encoded[10:] + "\n"

	client, server := setupTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/widgets/readme", r.URL.Path)
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))

		json.NewEncoder(w).Encode(map[string]string{
			"content":  wrapped,
			"encoding": "base64",
			"html_url": "https://github.com/acme/widgets/blob/main/README.md",
		})
	})
	defer server.Close()

	readme, err := client.GetReadme(context.Background(), "acme", "widgets")
	require.NoError(t, err)

	assert.Equal(t, text, readme.Content)
	require.NotNil(t, readme.HTMLURL)
	assert.Equal(t, "https://github.com/acme/widgets/blob/main/README.md", *readme.HTMLURL)
}

func TestClient_GetReadme_NotFoundIsSuccess(t *testing.T) {
	client, server := setupTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Not Found"}`))
	})
	defer server.Close()

	readme, err := client.GetReadme(context.Background(), "acme", "widgets")
	require.NoError(t, err)

	assert.Equal(t, "", readme.Content)
	assert.Nil(t, readme.HTMLURL)
}

func TestClient_GetReadme_MalformedContent(t *testing.T) {
	client, server := setupTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": "not!!valid@@base64", "html_url": "https://example.com"}`))
	})
	defer server.Close()

	_, err := client.GetReadme(context.Background(), "acme", "widgets")
	require.Error(t, err)
	assert.True(t, domain.IsUpstreamFailure(err))
}

func TestClient_GetReadme_UpstreamFailure(t *testing.T) {
	client, server := setupTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	_, err := client.GetReadme(context.Background(), "acme", "widgets")
	require.Error(t, err)
	assert.True(t, domain.IsUpstreamFailure(err))
}

func TestClient_GetReadme_MissingParams(t *testing.T) {
	client := NewClient()

	_, err := client.GetReadme(context.Background(), "", "widgets")
	assert.True(t, domain.IsInvalidInput(err))

	_, err = client.GetReadme(context.Background(), "acme", "")
	assert.True(t, domain.IsInvalidInput(err))
}
