package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frankfium/personal-site/internal/auth"
	"github.com/frankfium/personal-site/internal/domain"
)

// loginRequest represents a login request body. Pointer fields distinguish
// an absent field from an empty string so both cases reject with 400.
type loginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// loginResponse mirrors the shape the frontend user store expects
type loginResponse struct {
	Status string          `json:"status"`
	User   domain.Identity `json:"user"`
}

// login validates the posted credentials and issues the session cookie
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Bad Request",
			"message": "Invalid JSON body",
		})
		return
	}

	if req.Username == nil || req.Password == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Bad Request",
			"message": "Username and password must be strings",
		})
		return
	}

	identity, err := s.authenticator.Login(*req.Username, *req.Password)
	if err != nil {
		switch {
		case domain.IsAuthNotConfigured(err):
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "Server Error",
				"message": "Authentication is not configured",
			})
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"status": "Unauthorized"})
		}
		return
	}

	auth.IssueSessionCookie(c, identity.Username, s.config.Production())
	slog.InfoContext(c.Request.Context(), "admin logged in", "username", identity.Username)

	c.JSON(http.StatusOK, loginResponse{Status: "Logged in", User: identity})
}

// logout clears the session cookie
func (s *Server) logout(c *gin.Context) {
	auth.ClearSessionCookie(c, s.config.Production())
	c.JSON(http.StatusOK, gin.H{"status": "Logged out"})
}

// currentUser returns the authenticated user info. RequireIdentity has
// already rejected anonymous callers.
func (s *Server) currentUser(c *gin.Context) {
	identity, _ := auth.IdentityFromContext(c)
	c.JSON(http.StatusOK, identity)
}
