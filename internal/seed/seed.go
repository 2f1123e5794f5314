package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/gradchat/gradchat/internal/app/models"
	appRepos "github.com/gradchat/gradchat/internal/app/repositories"
	"github.com/gradchat/gradchat/internal/db"
	"github.com/gradchat/gradchat/internal/pkg/apperrors"
	"github.com/gradchat/gradchat/internal/pkg/auth"
)

func strPtr(s string) *string { return &s }

// CreateDefaultData creates demo accounts and profiles if they don't exist.
// Intended for development mode so a fresh database has something to browse.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	accountRepo := appRepos.NewAccountRepository(&db.PostgresDB{Pool: dbPool})

	lgr.Info().Msg("Checking/Creating default data (demo accounts)...")
	var finalErr error // To collect potential errors without stopping the process

	hashedPassword, err := auth.HashPassword("changeme")
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing demo password")
		return err
	}

	// --- Demo senior accounts --- //
	placementRole := appModels.RolePlacementCoordinator
	eventRole := appModels.RoleEventCoordinator

	seniors := []struct {
		account appModels.Account
		profile appModels.SeniorProfile
	}{
		{
			account: appModels.Account{Email: "arun.22mca@kongu.edu", Password: hashedPassword},
			profile: appModels.SeniorProfile{
				FullName:   "Arun Kumar",
				Email:      "arun.22mca@kongu.edu",
				Phone:      "9876543210",
				Department: "MCA",
				Photo:      "/uploads/demo/arun.jpg",
				Role:       &placementRole,
				Bio:        strPtr("Happy to help juniors with placement preparation."),
			},
		},
		{
			account: appModels.Account{Email: "divya.23mca@kongu.edu", Password: hashedPassword},
			profile: appModels.SeniorProfile{
				FullName:   "Divya S",
				Email:      "divya.23mca@kongu.edu",
				Phone:      "9876501234",
				Department: "MCA",
				Photo:      "/uploads/demo/divya.jpg",
				Role:       &eventRole,
			},
		},
	}

	for i := range seniors {
		s := &seniors[i]
		_, err := accountRepo.CreateWithSeniorProfile(ctx, &s.account, &s.profile)
		if err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Str("email", s.account.Email).Msg("Error creating demo senior")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Demo junior account --- //
	juniorAccount := appModels.Account{Email: "ravi.24mca@kongu.edu", Password: hashedPassword}
	juniorProfile := appModels.JuniorProfile{
		FullName: "Ravi M",
		Email:    "ravi.24mca@kongu.edu",
		Phone:    "9876512345",
	}
	_, err = accountRepo.CreateWithJuniorProfile(ctx, &juniorAccount, &juniorProfile)
	if err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Str("email", juniorAccount.Email).Msg("Error creating demo junior")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr // Return collected errors, if any
}
