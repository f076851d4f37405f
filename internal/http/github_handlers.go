package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frankfium/personal-site/internal/httputil"
	"github.com/frankfium/personal-site/internal/validation"
)

// listGitHubRepos proxies the upstream repository listing. The response
// contains only public, non-archived repositories sorted by update time.
func (s *Server) listGitHubRepos(c *gin.Context) {
	username, err := httputil.RequireQuery(c, "username")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := validation.ValidateOwner(username); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	repos, err := s.githubClient.ListUserRepos(c.Request.Context(), username)
	if err != nil {
		// Detail (including the upstream status) is logged by the client;
		// callers get a generic failure
		slog.ErrorContext(c.Request.Context(), "failed to list repositories",
			"username", username, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch repositories"})
		return
	}

	c.JSON(http.StatusOK, repos)
}

// getGitHubReadme proxies the upstream README fetch. A repository without a
// README yields 200 with empty content.
func (s *Server) getGitHubReadme(c *gin.Context) {
	owner, err := httputil.RequireQuery(c, "owner")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	repo, err := httputil.RequireQuery(c, "repo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := validation.ValidateOwner(owner); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := validation.ValidateRepoName(repo); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	readme, err := s.githubClient.GetReadme(c.Request.Context(), owner, repo)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to fetch readme",
			"owner", owner, "repo", repo, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch README"})
		return
	}

	c.JSON(http.StatusOK, readme)
}
