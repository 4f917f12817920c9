package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sofibayo/wedding-api/utils"
)

// CodeValidator reports whether an invitation code exists. Injected so tests
// can run the gate without a database.
type CodeValidator func(ctx context.Context, code string) (bool, error)

// DBCodeValidator resolves codes straight against the invitations table,
// avoiding the nested HTTP round-trip a fetch-based gate would need.
func DBCodeValidator(db *sql.DB) CodeValidator {
	return func(ctx context.Context, code string) (bool, error) {
		var exists bool
		err := db.QueryRowContext(ctx, `
			SELECT EXISTS(SELECT 1 FROM invitations WHERE invitation_code = $1)
		`, code).Scan(&exists)
		return exists, err
	}
}

// InvitationGate blocks the landing page for visitors without a valid
// invitation code:
//
//   - /no-invitation always passes
//   - the root path requires a valid ?invitation=CODE, otherwise it
//     redirects to /no-invitation
//   - a lookup failure counts as invalid (fail closed)
//   - every other path passes
//
// Admin paths are gated separately by AdminPageGate.
func InvitationGate(validate CodeValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if path == "/no-invitation" {
			c.Next()
			return
		}

		if path != "/" {
			c.Next()
			return
		}

		code := strings.TrimSpace(c.Query("invitation"))
		if code == "" {
			c.Redirect(http.StatusFound, "/no-invitation")
			c.Abort()
			return
		}

		valid, err := validate(c.Request.Context(), code)
		if err != nil {
			utils.SafeLog("⚠️ Invitation lookup failed for %s: %v", utils.MaskCode(code), err)
			c.Redirect(http.StatusFound, "/no-invitation")
			c.Abort()
			return
		}
		if !valid {
			c.Redirect(http.StatusFound, "/no-invitation")
			c.Abort()
			return
		}

		c.Next()
	}
}
