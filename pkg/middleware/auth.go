package middleware

import (
	"net/http"
	"strings"

	"adwallet/pkg/jwt"
	"adwallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer access token and exposes its claims
// on the context.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortError(c, http.StatusUnauthorized, "Authorization token is missing")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.AbortError(c, http.StatusUnauthorized, "Authorization header must be Bearer token")
			return
		}

		claims, err := jwtService.ValidateAccessToken(parts[1])
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}
