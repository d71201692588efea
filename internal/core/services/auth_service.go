package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	portssvc "github.com/profileiq/profileiq-backend/internal/core/ports/services"
	"github.com/profileiq/profileiq-backend/internal/middleware"
	"github.com/profileiq/profileiq-backend/internal/utils"
)

// ErrInvalidCredentials is returned when the login credential does not
// match the configured operator account.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthConfig carries the operator credential and token parameters.
type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
}

// authService verifies the single configured operator credential and issues
// JWTs.
type authService struct {
	cfg AuthConfig
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg AuthConfig) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login checks the username/password pair against the configured operator
// credential and returns a signed JWT on success.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if username != s.cfg.AdminUsername || !utils.CheckPasswordHash(password, s.cfg.AdminPasswordHash) {
		logger.Warn("Login rejected", slog.String("username", username))
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		return "", err
	}

	logger.Info("Operator logged in", slog.String("username", username))
	return token, nil
}
