package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sofibayo/wedding-api/utils"
)

// AdminAuthRequired protects the admin API. Requests without a valid session
// cookie get a 401 JSON error.
func AdminAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.SessionCookieName)
		if err != nil || utils.ValidateAdminToken(token) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminPageGate protects the admin pages. Unauthenticated visitors are sent
// to the login page; the login page itself always passes.
func AdminPageGate(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == loginPath {
			c.Next()
			return
		}

		token, err := c.Cookie(utils.SessionCookieName)
		if err != nil || utils.ValidateAdminToken(token) != nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
