package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gradchat/gradchat/internal/app/models"
)

// SeniorDirectory is the lookup surface the directory service needs
type SeniorDirectory interface {
	ListSeniorsByRole(ctx context.Context, role string) ([]*models.SeniorProfile, error)
	GetSeniorByAccountID(ctx context.Context, accountID int64) (*models.SeniorProfile, error)
}

// DirectoryService lets juniors browse senior mentors by role tag
type DirectoryService struct {
	profileRepo SeniorDirectory
	logger      zerolog.Logger
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(profileRepo SeniorDirectory, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// ListByRole returns seniors whose role tag matches exactly, including case.
// Unknown or unmatched tags yield an empty slice, not an error.
func (s *DirectoryService) ListByRole(ctx context.Context, role string) ([]*models.SeniorProfile, error) {
	return s.profileRepo.ListSeniorsByRole(ctx, role)
}

// GetByID re-fetches a single senior profile so detail views show current
// data rather than whatever the listing was cached from.
func (s *DirectoryService) GetByID(ctx context.Context, accountID int64) (*models.SeniorProfile, error) {
	return s.profileRepo.GetSeniorByAccountID(ctx, accountID)
}
