package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobook-vn/jobook-api/internal/models"
	"github.com/jobook-vn/jobook-api/internal/services"
)

const (
	// ContextUserID and ContextRole are the gin context keys the auth
	// middleware sets for downstream handlers.
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// RequireAuth validates the bearer token and stores the caller's identity in
// the request context.
func RequireAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			abort(c, "authorization header required")
			return
		}
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			abort(c, "bearer token required")
			return
		}

		claims, err := auth.ParseToken(strings.TrimSpace(tokenString))
		if err != nil {
			abort(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole guards a route group to one account type. Must run after
// RequireAuth.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.MustGet(ContextRole).(models.UserRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "this endpoint requires a " + string(role) + " account"})
			return
		}
		c.Next()
	}
}

// UserID reads the authenticated caller's id set by RequireAuth.
func UserID(c *gin.Context) uuid.UUID {
	return c.MustGet(ContextUserID).(uuid.UUID)
}

func abort(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
