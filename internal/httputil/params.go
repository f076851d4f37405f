package httputil

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// RequireQuery extracts a query parameter and errors when it is missing or
// empty
func RequireQuery(c *gin.Context, name string) (string, error) {
	value := c.Query(name)
	if value == "" {
		return "", fmt.Errorf("%s parameter is required", name)
	}
	return value, nil
}
