package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"blog-service/internal/domain"
	"blog-service/internal/logger"
)

const (
	// SessionCookie is the name of the session cookie.
	SessionCookie = "session_id"
	// UserKey is the context key under which the authenticated user is stored.
	UserKey = "current_user"
)

// SessionResolver resolves a session ID to a user ID.
type SessionResolver interface {
	GetUserID(ctx context.Context, sessionID string) (string, bool)
}

// UserLoader loads a user by ID.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth returns a middleware that resolves the session cookie to a user and
// stores the user in the request context. Requests without a valid session are
// redirected to the login page with the original URL in the "next" parameter.
func Auth(sessions SessionResolver, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			redirectToLogin(c)
			return
		}

		userID, ok := sessions.GetUserID(c.Request.Context(), sessionID)
		if !ok {
			redirectToLogin(c)
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			// Session points at a deleted or deactivated account
			logger.Warn("session user not found", "user_id", userID, "error", err)
			redirectToLogin(c)
			return
		}
		if !user.Active {
			redirectToLogin(c)
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, "/login?next="+next)
	c.Abort()
}

// CurrentUser returns the authenticated user from the gin context, or nil if
// the request is anonymous.
func CurrentUser(c *gin.Context) *domain.User {
	if v, exists := c.Get(UserKey); exists {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}
	return nil
}
