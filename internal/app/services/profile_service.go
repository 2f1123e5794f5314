package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/app/models/dto"
	"github.com/gradchat/gradchat/internal/pkg/apperrors"
)

// ProfileUpdater extends ProfileStore with the senior update operation
type ProfileUpdater interface {
	ProfileStore
	UpdateSenior(ctx context.Context, accountID int64, req *dto.UpdateProfileRequest) error
}

// ProfileService loads and updates account profiles. Every operation is
// scoped by the account's resolved category; a senior's data is never read
// from or written to the junior collection, and vice versa.
type ProfileService struct {
	profileRepo ProfileUpdater
	identity    *IdentityService
	logger      zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo ProfileUpdater, identity *IdentityService, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		identity:    identity,
		logger:      logger,
	}
}

// placeholderBio is shown for senior profiles that have not written one yet
const placeholderBio = "No bio added yet."

// GetProfile loads the caller's profile from the collection matching its
// resolved category.
func (s *ProfileService) GetProfile(ctx context.Context, accountID int64, email string) (*dto.ProfileResponse, error) {
	category, err := s.identity.ResolveCategory(ctx, accountID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProfileResponse{
		Category:    category,
		CohortClass: s.identity.ClassifyEmail(email),
	}

	switch category {
	case models.CategorySenior:
		senior, err := s.profileRepo.GetSeniorByAccountID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if senior.Bio == nil || *senior.Bio == "" {
			bio := placeholderBio
			senior.Bio = &bio
		}
		resp.Senior = senior
	case models.CategoryJunior:
		junior, err := s.profileRepo.GetJuniorByAccountID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		resp.Junior = junior
	}

	return resp, nil
}

// UpdateProfile applies a partial update to the caller's senior profile.
// Fields absent from the request keep their stored values; last write wins.
// Juniors have no mutable profile, so the update is refused for them.
func (s *ProfileService) UpdateProfile(ctx context.Context, accountID int64, req *dto.UpdateProfileRequest) error {
	category, err := s.identity.ResolveCategory(ctx, accountID)
	if err != nil {
		return err
	}

	if category != models.CategorySenior {
		return apperrors.NewCustomError(apperrors.ErrCategoryMismatch, "only senior profiles can be updated")
	}

	if req.Role != nil && !models.ValidRoleTag(models.RoleTag(*req.Role)) {
		return apperrors.ErrInvalidRoleTag
	}

	err = s.profileRepo.UpdateSenior(ctx, accountID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return err
		}
		s.logger.Error().Err(err).Int64("accountID", accountID).Msg("Senior profile update failed")
		return err
	}

	return nil
}
