package server

import (
	"strings"

	"github.com/gin-gonic/gin"

	userports "github.com/havendogs/api-server/internal/domains/users/ports"
)

// identityKey is the gin context key carrying the authenticated principal.
const identityKey = "auth.identity"

// AuthRequired verifies the bearer token and stores the identity on the
// request context. Owner-recording writes depend on this being the caller's
// real account; there is no anonymous fallback.
func AuthRequired(tokens userports.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondUnauthorized(c, "No token provided")
			c.Abort()
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		if raw == "" {
			respondUnauthorized(c, "No token provided")
			c.Abort()
			return
		}
		identity, err := tokens.Verify(raw)
		if err != nil {
			respondUnauthorized(c, "Invalid token")
			c.Abort()
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// callerIdentity fetches the principal placed by AuthRequired.
func callerIdentity(c *gin.Context) (*userports.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := value.(*userports.Identity)
	return identity, ok
}
