package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"toaigo/internal/domain/user"
	"toaigo/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "auth_user"

type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth authenticates the bearer token and stores the principal on the
// context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		principal, err := claims.User()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		c.Set(ctxUserKey, principal)
		c.Set("jwt_claims", map[string]any{
			"user_id": principal.ID,
			"role":    principal.Role.String(),
		})
		c.Next()
	}
}

// RequireRole gates a route to an explicit role set. Roles are not a
// hierarchy here: a merchant can do things an admin cannot, and vice versa.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetUser(c)
		if !ok {
			// Should be mounted after RequireAuth().
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			c.Abort()
			return
		}

		for _, r := range roles {
			if principal.Role == r {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error": gin.H{"message": "Insufficient permissions"},
		})
		c.Abort()
	}
}

// GetUser returns the authenticated principal from the context.
func GetUser(c *gin.Context) (user.User, bool) {
	v, exists := c.Get(ctxUserKey)
	if !exists {
		return user.User{}, false
	}
	u, ok := v.(user.User)
	return u, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}
