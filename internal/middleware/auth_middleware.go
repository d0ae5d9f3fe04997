package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
	"github.com/yigit/eduhub/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	UIDKey  = "uid"
	RoleKey = "role"
)

// AuthMiddleware guards routes with bearer tokens
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token and stores the caller's uid and role
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessageResponse("Authentication required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				message = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessageResponse(message))
			return
		}

		c.Set(UIDKey, claims.UID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// RoleRequired lets the request through only for the given role. JWTAuth must run first.
func (m *AuthMiddleware) RoleRequired(requiredRole models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(RoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessageResponse("Authentication required"))
			return
		}

		if r, ok := role.(models.RoleType); !ok || r != requiredRole {
			HandleAPIError(c, apperrors.NewForbiddenError("Access denied"), "")
			c.Abort()
			return
		}
		c.Next()
	}
}
