package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/stay-listings/internal/config"
	"github.com/BruksfildServices01/stay-listings/internal/domain/authz"
)

const (
	ContextUserID  = "userID"
	ContextIsAdmin = "isAdmin"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}
		isAdmin, _ := claims["is_admin"].(bool)

		c.Set(ContextUserID, userID)
		c.Set(ContextIsAdmin, isAdmin)

		c.Next()
	}
}

// Principal rebuilds the authenticated identity stored by AuthMiddleware.
func Principal(c *gin.Context) (authz.Principal, bool) {
	userIDVal, exists := c.Get(ContextUserID)
	if !exists {
		return authz.Principal{}, false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return authz.Principal{}, false
	}

	isAdmin := false
	if v, exists := c.Get(ContextIsAdmin); exists {
		isAdmin, _ = v.(bool)
	}

	return authz.Principal{UserID: userID, IsAdmin: isAdmin}, true
}
