package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// getSystemStats returns host statistics
func (s *Server) getSystemStats(c *gin.Context) {
	slog.DebugContext(c.Request.Context(), "fetching host statistics")

	stats := s.collector.Collect()

	c.JSON(http.StatusOK, stats)
}
