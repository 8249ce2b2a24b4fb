package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-service/internal/domain"
	"blog-service/internal/logger"
	"blog-service/internal/middleware"
	"blog-service/internal/service"
)

// SessionManager creates and revokes login sessions.
type SessionManager interface {
	Create(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, id string) error
}

// AuthHandler serves registration, login, and logout.
type AuthHandler struct {
	auth     service.AuthService
	sessions SessionManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth service.AuthService, sessions SessionManager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Next     string `json:"next"`
}

// Register handles POST /accounts/register. On success the client is
// redirected to the login page.
func (h *AuthHandler) Register(c *gin.Context) {
	var form domain.RegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := h.auth.Register(c.Request.Context(), form); err != nil {
		writeError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// Login handles POST /login. A successful login sets the session cookie and
// redirects to the requested page, defaulting to the article listing.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	sessionID, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, sessionID, 0, "/", "", false, true)

	c.Redirect(http.StatusFound, safeNext(req.Next))
}

// safeNext restricts post-login redirect targets to same-site absolute paths.
// A "//host" prefix would be treated as scheme-relative by browsers, so it is
// rejected along with anything not starting with a single "/".
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/articles"
	}
	return next
}

// Logout handles POST /logout. It drops the session server-side and clears
// the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(middleware.SessionCookie); err == nil && sessionID != "" {
		if err := h.sessions.Delete(c.Request.Context(), sessionID); err != nil {
			logger.Warn("session delete failed", "error", err)
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
