package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ecoshare/ecoshare-backend/internal/session"
)

// Context keys set on authenticated requests.
const (
	SessionNameKey  = "sessionName"
	SessionTokenKey = "sessionToken"
)

type AuthMiddleware struct {
	holder *session.Holder
}

func NewAuthMiddleware(holder *session.Holder) *AuthMiddleware {
	return &AuthMiddleware{holder: holder}
}

// RequireSession rejects requests without a resolvable bearer token.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		sess, ok := m.holder.Resolve(token)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid_token"})
		}
		c.Set(SessionNameKey, sess.Name)
		c.Set(SessionTokenKey, sess.Token)
		return next(c)
	}
}

// OptionalSession resolves a bearer token when present but never rejects.
// Used by listing reads so the "mine" filter can see the viewer.
func (m *AuthMiddleware) OptionalSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c); ok {
			if sess, ok := m.holder.Resolve(token); ok {
				c.Set(SessionNameKey, sess.Name)
				c.Set(SessionTokenKey, sess.Token)
			}
		}
		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authz := c.Request().Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authz, "Bearer "), true
}
