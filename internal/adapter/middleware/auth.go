package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"gatepass-backend/internal/pkg/authtoken"
)

const (
	ContextUID  = "auth.uid"
	ContextRole = "auth.role"
	ContextName = "auth.name"
)

// RequireAuth rejects requests without a valid bearer token and stores
// the principal on the echo context for handlers downstream.
func RequireAuth(tokens *authtoken.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			const prefix = "Bearer "
			if raw == "" || !strings.HasPrefix(raw, prefix) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			claims, err := tokens.Parse(strings.TrimSpace(raw[len(prefix):]))
			if err != nil {
				if errors.Is(err, authtoken.ErrExpiredToken) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token expired"})
				}
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			c.Set(ContextUID, claims.UID)
			c.Set(ContextRole, claims.Role)
			c.Set(ContextName, claims.Name)
			return next(c)
		}
	}
}

// RequireRole gates a route group to the listed roles; RequireAuth must
// run first.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := map[string]bool{}
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if !allowed[role] {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// UID returns the authenticated principal's id, empty when unset.
func UID(c echo.Context) string {
	uid, _ := c.Get(ContextUID).(string)
	return uid
}

// Role returns the authenticated principal's role, empty when unset.
func Role(c echo.Context) string {
	role, _ := c.Get(ContextRole).(string)
	return role
}
