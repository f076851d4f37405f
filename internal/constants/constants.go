package constants

import "time"

// Session cookie constants
const (
	// SessionCookieName is the cookie carrying the authenticated username
	SessionCookieName = "auth_token"

	// SessionCookieMaxAge is the cookie lifetime in seconds (7 days)
	SessionCookieMaxAge = 7 * 24 * 60 * 60
)

// GitHub API constants
const (
	// GitHubAPIBaseURL is the default upstream base URL for the GitHub REST API
	GitHubAPIBaseURL = "https://api.github.com"

	// GitHubAccept is the Accept header required by the GitHub v3 API
	GitHubAccept = "application/vnd.github.v3+json"

	// GitHubUserAgent identifies this service to the GitHub API
	GitHubUserAgent = "personal-site-backend"

	// GitHubReposPerPage is the fixed page size for repository listings
	GitHubReposPerPage = 100

	// GitHubClientTimeout bounds a single upstream call; a hung upstream
	// must not hang the request indefinitely
	GitHubClientTimeout = 10 * time.Second
)

// Timeout constants for the HTTP server
const (
	// ServerReadTimeout is the HTTP server read timeout
	ServerReadTimeout = 15 * time.Second

	// ServerWriteTimeout is the HTTP server write timeout
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the HTTP server idle timeout
	ServerIdleTimeout = 60 * time.Second

	// ServerShutdownTimeout bounds graceful shutdown; in-flight requests
	// past this deadline are dropped
	ServerShutdownTimeout = 30 * time.Second
)
