package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/auth"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
)

// Gin context keys set by the middlewares
const (
	ContextRequestID = "request_id"
	ContextUserID    = "user_id"
)

// JWTMiddleware rejects requests without a valid bearer token
func JWTMiddleware(jwtService auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			RespondError(c, domain.NewAppError(domain.ErrCodeTokenMissing, "Authorization header required", http.StatusUnauthorized, nil))
			return
		}

		if authenticate(c, jwtService, authHeader) {
			c.Next()
		}
	}
}

// OptionalJWTMiddleware identifies the viewer when a bearer token is sent and
// lets anonymous requests through
func OptionalJWTMiddleware(jwtService auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		if authenticate(c, jwtService, authHeader) {
			c.Next()
		}
	}
}

func authenticate(c *gin.Context, jwtService auth.JWTService, authHeader string) bool {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		RespondError(c, domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid authorization header format", http.StatusUnauthorized, nil))
		return false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	identity, err := jwtService.Verify(tokenString)
	if err != nil {
		RespondError(c, err)
		return false
	}

	c.Set(ContextUserID, identity.UserID)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.UserIDKey, identity.UserID))
	return true
}
