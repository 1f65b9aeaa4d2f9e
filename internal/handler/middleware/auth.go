package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"fervo/internal/domain/user"
	"fervo/internal/handler/httperr"
	"fervo/internal/pkg/cookie"
	"fervo/internal/pkg/errs"
	"fervo/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var (
	errTokenRequired = errs.New("access token required")
	errForbiddenRole = errs.Mark(errs.New("role not allowed"), errs.ErrForbidden)
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			msg := "Invalid or expired token"
			if errs.Is(err, usecase.ErrAccessTokenExpired) {
				msg = "Access token expired"
			} else {
				slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			}
			httperr.AbortWithError(c, http.StatusUnauthorized, err, msg, nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

// RequireRole must be chained after RequireAuth.
func (m *AuthMiddleware) RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}
		if got != role {
			httperr.AbortWithError(c, http.StatusForbidden, errForbiddenRole, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) RequirePartner() gin.HandlerFunc {
	return m.RequireRole(user.RolePartner)
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
