package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/services"
)

type AuthHandler struct {
	Users  *services.UserService
	Tokens *auth.TokenManager
}

func NewAuthHandler(users *services.UserService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens}
}

// Register is POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.Users.Register(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login is POST /auth/login. Successful logins get an access/refresh pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		serviceError(c, err)
		return
	}

	access, refresh, err := h.Tokens.IssuePair(user.ID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int(h.Tokens.AccessTTL().Seconds()),
	})
}

// Refresh is POST /auth/refresh: a valid refresh token buys a new pair.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dtos.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, err := h.Tokens.Verify(req.RefreshToken, auth.TokenTypeRefresh)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}

	user, err := h.Users.Get(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "user is inactive"})
		return
	}

	access, refresh, err := h.Tokens.IssuePair(user.ID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int(h.Tokens.AccessTTL().Seconds()),
	})
}

// Me is GET /auth/me: the user behind the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, auth.CurrentUser(c))
}
