package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

// UserLookup loads the current state of a user.
type UserLookup interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// RequireRole re-reads the authenticated user from the database and allows
// the request only when their current role is one of roles. The token's
// role claim is not trusted, so demotions apply immediately.
func RequireRole(users UserLookup, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), userID)
		if errors.Is(err, service.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user no longer exists"})
			return
		}
		if err != nil {
			logrus.WithError(err).WithField("user_id", userID).Error("failed to load user for role check")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to verify user role"})
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Set(ContextUserRole, user.Role)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorized as an admin"})
	}
}

// RequireAdmin allows only users whose stored role is admin.
func RequireAdmin(users UserLookup) gin.HandlerFunc {
	return RequireRole(users, models.RoleAdmin)
}
