package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/token"
)

type AuthMiddleware struct {
	tokens *token.Provider
}

func NewAuthMiddleware(tokens *token.Provider) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth validates the Bearer token and stores the caller's identity
// and roles in the request context. No account-state re-check happens here;
// tokens stay valid until natural expiry.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")

		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			c.Abort()
			return
		}

		claims, err := m.tokens.Parse(tokenString)
		if err != nil {
			message := "invalid token"
			if errors.Is(err, token.ErrExpired) {
				message = "token expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": message})
			c.Abort()
			return
		}

		c.Set("username", claims.Subject)
		c.Set("roles", claims.Roles)
		c.Next()
	}
}

// RequireRoles allows the request through when the caller holds any of the
// required roles.
func (m *AuthMiddleware) RequireRoles(required ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, exists := c.Get("roles")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		callerRoles, ok := roles.([]string)
		if !ok || !model.HasAnyRole(callerRoles, required...) {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin gates admin-only operations.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRoles(model.RoleAdmin)
}
