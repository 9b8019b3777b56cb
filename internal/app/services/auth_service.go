package services

import (
	"context"
	"errors"

	"github.com/cursoscarioca/webciclo/internal/app/models"
	"github.com/cursoscarioca/webciclo/internal/app/repositories"
	"github.com/cursoscarioca/webciclo/internal/pkg/apperrors"
	"github.com/cursoscarioca/webciclo/internal/pkg/auth"
	"github.com/cursoscarioca/webciclo/internal/pkg/logger"
)

// AuthService authenticates staff accounts and issues session tokens
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies the credentials and returns a signed token with its
// lifetime in seconds.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, int, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", 0, apperrors.ErrInvalidCredentials
		}
		return nil, "", 0, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", 0, apperrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", 0, err
	}

	// Best effort; a failed stamp must not block the login.
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("user_id", user.ID).Msg("Failed to update last login")
	}

	logger.Info().Str("username", user.Username).Msg("Staff user logged in")
	return user, token, expiresIn, nil
}
