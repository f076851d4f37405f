package http

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/frankfium/personal-site/internal/auth"
)

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Health check endpoint (no auth required)
	s.engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "personal-site",
		})
	})

	api := s.engine.Group("/api")
	{
		api.POST("/login", s.login)
		api.POST("/logout", s.logout)
		api.GET("/me", auth.RequireIdentity(), s.currentUser)
		api.GET("/system", s.getSystemStats)

		gh := api.Group("/github")
		{
			gh.GET("/repos", s.listGitHubRepos)
			gh.GET("/readme", s.getGitHubReadme)
		}
	}

	// Serve frontend static files; the session gate already ran, so admin
	// pages are gated before the catch-all fires
	s.engine.Static("/assets", filepath.Join(s.config.StaticDir, "assets"))
	s.engine.NoRoute(func(c *gin.Context) {
		c.File(filepath.Join(s.config.StaticDir, "index.html"))
	})
}
