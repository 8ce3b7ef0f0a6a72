package middleware

import (
	"strings"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/logger"
	"portfolio_backend/pkg/apperrors"
	"portfolio_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// TokenValidator проверяет токен администратора (services.AuthService)
type TokenValidator interface {
	ValidateToken(token string) (*auth.AdminClaims, error)
}

// AdminAuthMiddleware пропускает только запросы с валидным Bearer токеном администратора
func AdminAuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := validator.ValidateToken(tokenStr)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Admin token rejected", "error", err.Error(), "ip", c.ClientIP())
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(string(contextkeys.AdminClaimsKey), claims)
		c.Request = c.Request.WithContext(logger.WithAdminID(c.Request.Context(), claims.Email))
		c.Next()
	}
}

// GetAdminClaims извлекает claims администратора из контекста
func GetAdminClaims(c *gin.Context) *auth.AdminClaims {
	val, ok := c.Get(string(contextkeys.AdminClaimsKey))
	if !ok {
		return nil
	}
	claims, _ := val.(*auth.AdminClaims)
	return claims
}
