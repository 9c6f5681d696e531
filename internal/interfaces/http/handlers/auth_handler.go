package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"bank-portal.backend/internal/config"
	"bank-portal.backend/internal/domain/entities"
	domainerrors "bank-portal.backend/internal/domain/errors"
	"bank-portal.backend/internal/interfaces/http/middleware"
	"bank-portal.backend/internal/interfaces/http/response"
	"bank-portal.backend/pkg/crypto"
	"bank-portal.backend/pkg/logger"
	"bank-portal.backend/pkg/redis"
	"go.uber.org/zap"
)

// AuthService is the authentication behavior the handler depends on
type AuthService interface {
	Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.User, error)
	AdminLogin(ctx context.Context, input *entities.AdminLoginInput) (*entities.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

// SessionStore is the server-side session behavior the handler depends on
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
	TouchSession(ctx context.Context, sessionID string, expiration time.Duration) error
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService AuthService
	sessions    SessionStore
	cfg         config.SessionConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, sessions SessionStore, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		cfg:         cfg,
	}
}

// Register handles user registration
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.BadRequest("User already exists"))
			return
		}
		response.Error(c, err)
		return
	}

	// The new user is logged in immediately, in pending state
	if err := h.establishSession(c, user); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": userSummary(user),
	})
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authService.Login(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.Unauthorized("Invalid credentials"))
			return
		}
		response.Error(c, err)
		return
	}

	if err := h.establishSession(c, user); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": userSummary(user),
	})
}

// AdminLogin handles the fixed-credential administrator login
// POST /api/auth/admin-login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var input entities.AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authService.AdminLogin(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.Unauthorized("Invalid admin credentials"))
			return
		}
		response.Error(c, err)
		return
	}

	if err := h.establishSession(c, user); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"isAdmin":   true,
		},
	})
}

// GetUser returns the current principal's profile and flags
// GET /api/auth/user
func (h *AuthHandler) GetUser(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	// The frontend polls this endpoint, so active sessions slide their expiry
	if sessionID, ok := middleware.GetSessionID(c); ok {
		if err := h.sessions.TouchSession(c.Request.Context(), sessionID, h.cfg.TTL); err != nil {
			logger.Warn(c.Request.Context(), "failed to refresh session expiry", zap.Error(err))
		}
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"firstName":  user.FirstName,
		"lastName":   user.LastName,
		"isApproved": user.IsApproved,
		"isAdmin":    user.IsAdmin,
	})
}

// Logout destroys the server-side session and clears the cookie
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, ok := middleware.GetSessionID(c); ok {
		if err := h.sessions.DeleteSession(c.Request.Context(), sessionID); err != nil {
			logger.Warn(c.Request.Context(), "failed to delete session", zap.Error(err))
		}
	}
	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) establishSession(c *gin.Context, user *entities.User) error {
	sessionID, err := crypto.GenerateSessionID()
	if err != nil {
		return err
	}

	data := &redis.SessionData{
		UserID:     user.ID.String(),
		IsAdmin:    user.IsAdmin,
		IsApproved: user.IsApproved,
	}
	if err := h.sessions.CreateSession(c.Request.Context(), sessionID, data, h.cfg.TTL); err != nil {
		return err
	}

	c.SetCookie(h.cfg.CookieName, sessionID, int(h.cfg.TTL.Seconds()), "/", "", false, true)
	return nil
}

func userSummary(user *entities.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"firstName":  user.FirstName,
		"lastName":   user.LastName,
		"isApproved": user.IsApproved,
	}
}
