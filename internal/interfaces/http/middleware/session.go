package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"bank-portal.backend/internal/domain/entities"
	"bank-portal.backend/pkg/redis"
)

const (
	// SessionCookieName is the cookie carrying the session id
	SessionCookieName = "session_id"
	// SessionIDKey is the context key for the session id
	SessionIDKey = "sessionId"
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// IsAdminKey is the context key for the admin flag
	IsAdminKey = "isAdmin"
)

// SessionGetter resolves a session id to its stored data
type SessionGetter interface {
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
}

// UserGetter loads a user record, used to re-check approval state
type UserGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

// RequireAuth resolves the session cookie against the server-side store and
// attaches the principal to the request context
func RequireAuth(sessions SessionGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized",
			})
			return
		}

		session, err := sessions.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized",
			})
			return
		}

		userID, err := uuid.Parse(session.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized",
			})
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Set(UserIDKey, userID)
		c.Set(IsAdminKey, session.IsAdmin)

		c.Next()
	}
}

// RequireAdmin rejects principals without the admin flag. Runs after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(IsAdminKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Admin access required",
			})
			return
		}
		c.Next()
	}
}

// RequireApproved re-reads the caller's user record and rejects unapproved
// users. The session's approval snapshot is never trusted here: approval can
// be revoked after login and must take effect on the next request.
func RequireApproved(users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized",
			})
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil || !user.IsApproved {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Account not approved",
			})
			return
		}
		c.Next()
	}
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetSessionID gets the session id from context
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get(SessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := sessionID.(string)
	return id, ok
}

// IsAdmin reports whether the current principal is the administrator
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(IsAdminKey)
}
