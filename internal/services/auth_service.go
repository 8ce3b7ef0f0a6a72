package services

import (
	"context"
	"fmt"
	"strings"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

// AuthService - вход единственного администратора и проверка его токенов
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ValidateToken(token string) (*auth.AdminClaims, error)
}

type authService struct {
	email        string
	passwordHash string
	tokens       *auth.TokenManager
}

// NewAuthService берет хеш пароля из конфигурации или хеширует открытый пароль.
// Без email или пароля вход в админку отключен.
func NewAuthService(cfg config.AdminConfig, tokens *auth.TokenManager) (AuthService, error) {
	hash := cfg.PasswordHash
	if hash == "" && cfg.Password != "" {
		if err := auth.ValidatePassword(cfg.Password); err != nil {
			return nil, fmt.Errorf("admin password: %w", err)
		}
		var err error
		if hash, err = auth.HashPassword(cfg.Password); err != nil {
			return nil, err
		}
	}
	if cfg.Email == "" || hash == "" {
		logger.Warn("Admin credentials are not configured, admin API login is disabled")
	}

	return &authService{
		email:        strings.ToLower(strings.TrimSpace(cfg.Email)),
		passwordHash: hash,
		tokens:       tokens,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if s.email == "" || email != s.email || !auth.CheckPasswordHash(req.Password, s.passwordHash) {
		logger.CtxWarn(ctx, "Admin login failed", "email", email)
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expires, err := s.tokens.Generate(s.email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Admin logged in", "email", email)
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expires,
	}, nil
}

func (s *authService) ValidateToken(token string) (*auth.AdminClaims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken.WithError(err)
	}
	if !strings.EqualFold(claims.Email, s.email) {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
