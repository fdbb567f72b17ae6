package delivery

import (
	"net/http"
	"strings"

	authdomain "insightflo-backend/internal/auth/domain"
	"insightflo-backend/pkg/response"
	"insightflo-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthGate for downstream handlers.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
)

// AuthGate verifies access tokens on protected paths. Public prefixes are
// checked before protected prefixes, so a public path that overlaps a
// protected prefix is still let through. Paths matching neither set pass
// through unauthenticated.
func AuthGate(issuer *token.Issuer, publicPrefixes, protectedPrefixes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if matchesPrefix(path, publicPrefixes) {
			c.Next()
			return
		}

		if !matchesPrefix(path, protectedPrefixes) {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c, "authentication required")
			return
		}

		// Malformed headers and bad tokens get the same response; the
		// distinction stays server-side.
		raw, err := token.ExtractBearer(authHeader)
		if err != nil {
			abortUnauthenticated(c, "invalid or expired token")
			return
		}

		claims, err := issuer.VerifyAccess(raw)
		if err != nil {
			abortUnauthenticated(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextUserEmail, claims.Email)
		c.Next()
	}
}

func matchesPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func abortUnauthenticated(c *gin.Context, message string) {
	response.Fail(c, http.StatusUnauthorized, string(authdomain.CodeAuthenticationRequired), message)
	c.Abort()
}
