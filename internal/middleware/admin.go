package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nhasan/building-api/internal/models"
)

// UserLookup fetches a user record by email, returning nil when absent.
type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireAdmin must be registered after RequireAuth. It looks up the caller's
// user record by the claim email and rejects anyone who is not an admin.
func RequireAdmin(users UserLookup, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ClaimEmailKey)

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			log.Error("admin lookup failed", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Next()
	}
}
