package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authpkg "github.com/atmaprakash0998/rental-app-backend/auth"
	"github.com/atmaprakash0998/rental-app-backend/permission"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

func unauthorized(c *gin.Context) {
	// One uniform 401 regardless of which check failed.
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
}

// RequireAuth validates the Bearer token, re-resolves the user id against
// the database (role must match the claim, account active and not
// deleted) and places id + role into the gin context.
func RequireAuth(secret string, users authpkg.UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			unauthorized(c)
			return
		}
		tokenString := authHeader[7:]

		claims, err := authpkg.ParseAndValidate(secret, tokenString)
		if err != nil {
			unauthorized(c)
			return
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := users.GetActiveUserByID(c.Request.Context(), userID, claims.Type)
		if err != nil || user == nil {
			unauthorized(c)
			return
		}

		c.Set(CtxUserID, user.ID.String())
		c.Set(CtxRole, user.Type)
		c.Next()
	}
}

// RequireRoles ensures the authenticated principal has one of the allowed
// roles.
func RequireRoles(allowed ...permission.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if !permission.RoleIn(role, allowed...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequirePermission ensures the principal's role grants the permission tag.
func RequirePermission(p permission.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if !permission.Has(role, p) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "insufficient permissions, required: " + string(p)})
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated caller's user id from the context.
func CallerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(CtxUserID))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
