package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/pkg/apperrors"
	"github.com/gradchat/gradchat/internal/pkg/validation"
)

// ProfileStore is the profile lookup surface shared by the identity,
// profile and directory services
type ProfileStore interface {
	GetSeniorByAccountID(ctx context.Context, accountID int64) (*models.SeniorProfile, error)
	GetJuniorByAccountID(ctx context.Context, accountID int64) (*models.JuniorProfile, error)
}

// IdentityService resolves how an account is classified: by its email's
// cohort token for dashboard routing, and by profile membership for data
// access. The two classifications are independent and may disagree.
type IdentityService struct {
	profileRepo ProfileStore
	logger      zerolog.Logger
}

// NewIdentityService creates a new IdentityService
func NewIdentityService(profileRepo ProfileStore, logger zerolog.Logger) *IdentityService {
	return &IdentityService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// ClassifyEmail derives the dashboard cohort from the email's embedded
// two-digit year token. Addresses without a token classify as junior.
func (s *IdentityService) ClassifyEmail(email string) models.CohortClass {
	if validation.IsSeniorCohort(email) {
		return models.CohortSenior
	}
	return models.CohortJunior
}

// ResolveCategory determines which profile collection holds the account's
// record. Seniors are checked first; an account present in both collections
// resolves as senior. An account in neither resolves as CategoryAbsent,
// which is a valid state rather than an error.
func (s *IdentityService) ResolveCategory(ctx context.Context, accountID int64) (models.Category, error) {
	_, err := s.profileRepo.GetSeniorByAccountID(ctx, accountID)
	if err == nil {
		return models.CategorySenior, nil
	}
	if !errors.Is(err, apperrors.ErrProfileNotFound) {
		return "", err
	}

	_, err = s.profileRepo.GetJuniorByAccountID(ctx, accountID)
	if err == nil {
		return models.CategoryJunior, nil
	}
	if !errors.Is(err, apperrors.ErrProfileNotFound) {
		return "", err
	}

	s.logger.Warn().Int64("accountID", accountID).Msg("Account has no profile in either collection")
	return models.CategoryAbsent, nil
}
