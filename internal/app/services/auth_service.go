package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/app/models/dto"
	"github.com/emin/backlot/internal/app/repositories"
	"github.com/emin/backlot/internal/pkg/apperrors"
	"github.com/emin/backlot/internal/pkg/auth"
	"github.com/emin/backlot/internal/pkg/logger"
)

// ProfileAuthStore is the profile surface the auth service needs
type ProfileAuthStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	GetByID(ctx context.Context, id int64) (*models.Profile, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

// TokenStore persists refresh tokens
type TokenStore interface {
	Store(ctx context.Context, token string, profileID int64, expiresAt time.Time) error
	Get(ctx context.Context, token string) (*repositories.RefreshToken, error)
	Delete(ctx context.Context, token string) error
}

// AuthService handles login and token lifecycle
type AuthService struct {
	profiles ProfileAuthStore
	tokens   TokenStore
	jwt      *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(profiles ProfileAuthStore, tokens TokenStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		profiles: profiles,
		tokens:   tokens,
		jwt:      jwtService,
	}
}

// Login verifies credentials and issues a token pair. A missing profile and
// a wrong password produce the same error so usernames cannot be probed.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Profile, *dto.TokenResponse, error) {
	profile, err := s.profiles.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(profile.Password, password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if !profile.IsActive {
		return nil, nil, apperrors.ErrAccountDisabled
	}

	tokens, err := s.issueTokens(ctx, profile)
	if err != nil {
		return nil, nil, err
	}

	if err := s.profiles.UpdateLastLogin(ctx, profile.ID); err != nil {
		logger.Warn().Err(err).Int64("profileId", profile.ID).Msg("Failed to stamp last login")
	}

	return profile, tokens, nil
}

// Refresh exchanges a stored refresh token for a new pair. The old token is
// deleted before the new one is issued, so each refresh token works once.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokens.Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}

	if time.Now().After(stored.ExpiresAt) {
		if err := s.tokens.Delete(ctx, refreshToken); err != nil {
			logger.Warn().Err(err).Msg("Failed to delete expired refresh token")
		}
		return nil, apperrors.ErrTokenExpired
	}

	profile, err := s.profiles.GetByID(ctx, stored.ProfileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}
	if !profile.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokens.Delete(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return s.issueTokens(ctx, profile)
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokens.Delete(ctx, refreshToken)
}

func (s *AuthService) issueTokens(ctx context.Context, profile *models.Profile) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwt.GenerateTokenPair(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	if err := s.tokens.Store(ctx, refreshToken, profile.ID, s.jwt.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}
