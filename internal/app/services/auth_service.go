package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/app/models/dto"
	"github.com/gradchat/gradchat/internal/pkg/apperrors"
	"github.com/gradchat/gradchat/internal/pkg/auth"
	"github.com/gradchat/gradchat/internal/pkg/validation"
)

// AccountStore is the account persistence surface the auth service needs
type AccountStore interface {
	CreateWithJuniorProfile(ctx context.Context, account *models.Account, profile *models.JuniorProfile) (int64, error)
	CreateWithSeniorProfile(ctx context.Context, account *models.Account, profile *models.SeniorProfile) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

// TokenStore is the refresh token persistence surface the auth service needs
type TokenStore interface {
	CreateToken(ctx context.Context, token string, accountID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (int64, time.Time, bool, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllAccountTokens(ctx context.Context, accountID int64) error
}

// AuthService handles authentication operations
type AuthService struct {
	accountRepo AccountStore
	tokenRepo   TokenStore
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	accountRepo AccountStore,
	tokenRepo TokenStore,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// RegisterJunior registers a new junior account with its profile
func (s *AuthService) RegisterJunior(ctx context.Context, req *dto.RegisterJuniorRequest) (*dto.RegisterResponse, error) {
	if !validation.IsValidJuniorEmail(req.Email) {
		return nil, apperrors.ErrInvalidEmail
	}
	if !validation.IsValidPhone(req.Phone) {
		return nil, apperrors.ErrInvalidPhone
	}
	if !validation.IsValidPassword(req.Password) {
		return nil, apperrors.ErrInvalidPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		Email:    req.Email,
		Password: hashedPassword,
		IsActive: true,
	}
	profile := &models.JuniorProfile{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	}

	accountID, err := s.accountRepo.CreateWithJuniorProfile(ctx, account, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("accountID", accountID).
		Str("email", req.Email).
		Msg("Junior account registered")

	return &dto.RegisterResponse{
		AccountID: accountID,
		Email:     req.Email,
		Category:  string(models.CategoryJunior),
	}, nil
}

// RegisterSenior registers a new senior account with its profile. A profile
// photo is mandatory for seniors.
func (s *AuthService) RegisterSenior(ctx context.Context, req *dto.RegisterSeniorRequest) (*dto.RegisterResponse, error) {
	if !validation.IsValidSeniorEmail(req.Email) {
		return nil, apperrors.ErrInvalidEmail
	}
	if !validation.IsValidPhone(req.Phone) {
		return nil, apperrors.ErrInvalidPhone
	}
	if !validation.IsValidPassword(req.Password) {
		return nil, apperrors.ErrInvalidPassword
	}
	if strings.TrimSpace(req.Photo) == "" {
		return nil, apperrors.NewBadRequestError("profile photo is required")
	}
	if strings.TrimSpace(req.Department) == "" {
		return nil, apperrors.NewBadRequestError("department is required")
	}

	var role *models.RoleTag
	if strings.TrimSpace(req.Role) != "" {
		tag := models.RoleTag(req.Role)
		if !models.ValidRoleTag(tag) {
			return nil, apperrors.ErrInvalidRoleTag
		}
		role = &tag
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		Email:    req.Email,
		Password: hashedPassword,
		IsActive: true,
	}
	profile := &models.SeniorProfile{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Photo:      req.Photo,
		Role:       role,
	}

	accountID, err := s.accountRepo.CreateWithSeniorProfile(ctx, account, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("accountID", accountID).
		Str("email", req.Email).
		Msg("Senior account registered")

	return &dto.RegisterResponse{
		AccountID: accountID,
		Email:     req.Email,
		Category:  string(models.CategorySenior),
	}, nil
}

// Login authenticates an account
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.accountRepo.UpdateLastLogin(ctx, account.ID); err != nil {
		s.logger.Warn().Err(err).Int64("accountID", account.ID).Msg("Failed to stamp last login")
	}

	return s.generateTokenResponse(ctx, account)
}

// RefreshToken creates a new token pair using a refresh token. The used
// refresh token is revoked so it cannot be replayed; a replay of an already
// revoked token revokes every active token of the account, since it suggests
// the token was stolen.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	accountID, _, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenRevoked) && accountID != 0 {
			s.logger.Warn().
				Int64("accountID", accountID).
				Msg("Revoked refresh token replayed, revoking all account tokens")
			if revokeErr := s.tokenRepo.RevokeAllAccountTokens(ctx, accountID); revokeErr != nil {
				s.logger.Error().Err(revokeErr).
					Int64("accountID", accountID).
					Msg("Failed to revoke account tokens after replay")
			}
		}
		return nil, err
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("account not found: %w", err)
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, account)
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return apperrors.ErrTokenInvalid
	}
	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

// generateTokenResponse creates token response
func (s *AuthService) generateTokenResponse(ctx context.Context, account *models.Account) (*dto.TokenResponse, error) {
	cohort := cohortOf(account.Email)

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(account, cohort)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	tokenExpiry := s.jwtService.GetRefreshTokenExpiry()

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, account.ID, tokenExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		TokenType:             "Bearer",
		ExpiresIn:             int64(expiresIn),
		RefreshTokenExpiresIn: int64(refreshExpiresIn),
		Cohort:                string(cohort),
	}, nil
}

// cohortOf derives the dashboard cohort from an email address
func cohortOf(email string) models.CohortClass {
	if validation.IsSeniorCohort(email) {
		return models.CohortSenior
	}
	return models.CohortJunior
}
