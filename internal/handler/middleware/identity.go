package middleware

import (
	"net/http"

	"elibrary-borrowing/internal/pkg/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// The edge gateway authenticates every request and forwards the result as
// headers. This middleware only parses those headers; credentials are never
// re-validated here.
const (
	headerUserID    = "X-User-ID"
	headerUserEmail = "X-User-Email"
	headerUserRoles = "X-User-Roles"

	ctxIdentityKey = "caller_identity"
)

// RequireIdentity rejects requests that arrive without a usable forwarded
// identity. The parsed identity is stored both in the gin context and in the
// request context so remote clients can re-forward it.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID := c.GetHeader(headerUserID)
		if rawID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Caller identity required",
			})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(rawID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid caller identity",
			})
			c.Abort()
			return
		}

		id := identity.Identity{
			UserID: userID,
			Email:  c.GetHeader(headerUserEmail),
			Roles:  identity.ParseRoles(c.GetHeader(headerUserRoles)),
		}

		c.Set(ctxIdentityKey, id)
		c.Request = c.Request.WithContext(identity.NewContext(c.Request.Context(), id))
		c.Next()
	}
}

// RequireRole guards privileged routes. Must run after RequireIdentity.
func RequireRole(role identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !id.HasRole(role) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetIdentity(c *gin.Context) (identity.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return identity.Identity{}, false
	}
	id, ok := v.(identity.Identity)
	return id, ok
}
