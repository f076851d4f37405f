package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frankfium/personal-site/internal/constants"
)

// IssueSessionCookie sets the session cookie for the given username. The
// cookie value is the username itself; there is no signature or server-side
// session table, so cookie presence alone is proof of identity. Preserved
// deliberately - see DESIGN.md.
func IssueSessionCookie(c *gin.Context, username string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.SessionCookieName, username, constants.SessionCookieMaxAge, "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie immediately
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.SessionCookieName, "", -1, "/", "", secure, true)
}
