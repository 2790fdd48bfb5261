package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wewilldo-be/internal/jwt"
)

// currentUserKey is the gin context key the resolved identity is stored under
const currentUserKey = "currentUser"

// AuthMiddleware verifies the bearer token on each request and attaches the
// decoded identity to the context. A missing token fails with 401; a present
// but invalid or expired token fails with 403. The asymmetry is deliberate
// and matched by the frontend's route guards.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Access token is required",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Invalid token",
			})
			c.Abort()
			return
		}

		c.Set(currentUserKey, claims.User)
		c.Next()
	}
}

// CurrentUser returns the identity resolved by AuthMiddleware. Only the ID
// field is trusted for ownership checks; the rest is an issuance-time
// snapshot.
func CurrentUser(c *gin.Context) (jwt.UserInfo, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return jwt.UserInfo{}, false
	}
	user, ok := value.(jwt.UserInfo)
	return user, ok
}
