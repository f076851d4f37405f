package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/frankfium/personal-site/internal/apipaths"
	"github.com/frankfium/personal-site/internal/constants"
	"github.com/frankfium/personal-site/internal/domain"
)

// identityKey is the gin context key holding the request identity
const identityKey = "identity"

// SessionGate runs on every request. It derives the caller identity from the
// session cookie (or leaves the caller anonymous) and redirects anonymous
// callers away from admin-only pages. It performs no I/O and cannot fail.
func SessionGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if value, err := c.Cookie(constants.SessionCookieName); err == nil && value != "" {
			// The cookie value is accepted as-is; any non-empty value
			// authenticates as that username
			c.Set(identityKey, domain.Identity{Username: value})
		}

		if strings.HasPrefix(c.Request.URL.Path, apipaths.AdminPrefix) {
			if _, ok := IdentityFromContext(c); !ok {
				c.Redirect(http.StatusSeeOther, apipaths.LoginPage)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// RequireIdentity rejects anonymous callers with 401. It is the API-side
// counterpart of the page redirect in SessionGate.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFromContext(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}
		c.Next()
	}
}

// IdentityFromContext extracts the request identity set by SessionGate
func IdentityFromContext(c *gin.Context) (domain.Identity, bool) {
	if value, exists := c.Get(identityKey); exists {
		if id, ok := value.(domain.Identity); ok {
			return id, true
		}
	}
	return domain.Identity{}, false
}
