package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mem "solotrip/pkg/memcache"
	"solotrip/pkg/utils"
)

const (
	ContextUserID   = "user_id"
	ContextUserName = "user_name"
	ContextToken    = "token"
	ContextClaims   = "claims"
)

// BearerToken extracts the token from the Authorization header, falling back to
// the `token` query parameter used by browser WebSocket clients.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return strings.TrimSpace(c.Query("token"))
}

func JWTAuthMiddleware(jwtManager *utils.JWTManager, denylist mem.TokenDenylist) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if !authenticate(c, jwtManager, denylist, tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth sets the identity when a valid token is present and never aborts.
func OptionalAuth(jwtManager *utils.JWTManager, denylist mem.TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := BearerToken(c); tokenString != "" {
			authenticate(c, jwtManager, denylist, tokenString)
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, jwtManager *utils.JWTManager, denylist mem.TokenDenylist, tokenString string) bool {
	claims, err := jwtManager.ValidateToken(tokenString)
	if err != nil {
		return false
	}

	revoked, err := denylist.IsRevoked(c.Request.Context(), tokenString)
	if err != nil || revoked {
		return false
	}

	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUserName, claims.Name)
	c.Set(ContextToken, tokenString)
	c.Set(ContextClaims, claims)
	return true
}
