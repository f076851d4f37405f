package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/frankfium/personal-site/internal/constants"
	"github.com/frankfium/personal-site/internal/domain"
)

// HTTPClient interface abstracts HTTP operations for testing
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a read-only client for the GitHub REST API. It attaches no
// authentication token and is therefore subject to unauthenticated rate
// limits. It holds no state across calls.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	userAgent  string
}

// ClientOption allows configuring the GitHub client
type ClientOption func(*Client)

// WithBaseURL overrides the upstream base URL (used in tests)
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(hc HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a GitHub client with the given options. The default HTTP
// client enforces an explicit timeout on every upstream call.
func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: constants.GitHubClientTimeout},
		baseURL:    constants.GitHubAPIBaseURL,
		userAgent:  constants.GitHubUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// ListUserRepos lists a user's repositories from the upstream API, drops
// private and archived entries, and returns the remainder sorted descending
// by update time. Entries with equal timestamps keep their upstream order.
// An empty upstream result yields an empty slice, not an error.
func (c *Client) ListUserRepos(ctx context.Context, username string) ([]Repo, error) {
	if username == "" {
		return nil, domain.WrapInvalidInput("username cannot be empty")
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=%d",
		c.baseURL, url.PathEscape(username), constants.GitHubReposPerPage)

	var repos []Repo
	if err := c.getJSON(ctx, endpoint, &repos); err != nil {
		return nil, err
	}

	public := make([]Repo, 0, len(repos))
	for _, repo := range repos {
		if repo.Private || repo.Archived {
			continue
		}
		public = append(public, repo)
	}

	sort.SliceStable(public, func(i, j int) bool {
		return public[i].UpdatedAt.After(public[j].UpdatedAt)
	})

	return public, nil
}

// readmePayload is the subset of the upstream README record we consume
type readmePayload struct {
	Content string `json:"content"`
	HTMLURL string `json:"html_url"`
}

// GetReadme fetches a repository README and decodes its base64 content to
// UTF-8 text. An upstream 404 means the repository has no README and yields
// an empty Readme with a nil error.
func (c *Client) GetReadme(ctx context.Context, owner, repo string) (*Readme, error) {
	if owner == "" {
		return nil, domain.WrapInvalidInput("owner cannot be empty")
	}
	if repo == "" {
		return nil, domain.WrapInvalidInput("repo cannot be empty")
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s/readme",
		c.baseURL, url.PathEscape(owner), url.PathEscape(repo))

	req, err := c.newRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("github readme request failed", "owner", owner, "repo", repo, "error", err)
		return nil, domain.WrapUpstreamFailed("fetch readme", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// No README is a successful outcome
		return &Readme{Content: "", HTMLURL: nil}, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The upstream status stays in the logs, never in the caller-facing error
		slog.Error("github readme request returned non-success status",
			"owner", owner, "repo", repo, "status", resp.StatusCode)
		return nil, domain.WrapUpstreamFailed("fetch readme",
			fmt.Errorf("unexpected upstream status %d", resp.StatusCode))
	}

	var payload readmePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		slog.Error("failed to decode github readme response", "owner", owner, "repo", repo, "error", err)
		return nil, domain.WrapUpstreamFailed("decode readme response", err)
	}

	// GitHub wraps base64 content with newlines
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(payload.Content, "\n", ""))
	if err != nil {
		slog.Error("failed to decode github readme content", "owner", owner, "repo", repo, "error", err)
		return nil, domain.WrapUpstreamFailed("decode readme content", err)
	}

	htmlURL := payload.HTMLURL
	return &Readme{Content: string(decoded), HTMLURL: &htmlURL}, nil
}

// newRequest builds a GET request with the headers the GitHub API requires
func (c *Client) newRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.WrapUpstreamFailed("create request", err)
	}
	req.Header.Set("Accept", constants.GitHubAccept)
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}

// getJSON performs a GET request and decodes a 2xx response body into result
func (c *Client) getJSON(ctx context.Context, endpoint string, result any) error {
	req, err := c.newRequest(ctx, endpoint)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("github request failed", "url", endpoint, "error", err)
		return domain.WrapUpstreamFailed("list repositories", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		slog.Error("github request returned non-success status",
			"url", endpoint, "status", resp.StatusCode, "body", string(body))
		return domain.WrapUpstreamFailed("list repositories",
			fmt.Errorf("unexpected upstream status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		slog.Error("failed to decode github response", "url", endpoint, "error", err)
		return domain.WrapUpstreamFailed("decode response", err)
	}

	return nil
}
