package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/app/models/dto"
	"github.com/gradchat/gradchat/internal/pkg/apperrors"
	"github.com/gradchat/gradchat/internal/pkg/logger"
)

const seniorColumns = "id, account_id, full_name, email, phone, department, role, bio, photo, whatsapp, github, linkedin"

// ProfileRepository handles junior and senior profile reads and updates.
// Profile creation happens inside the registration transaction in
// AccountRepository.
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetSeniorByAccountID retrieves a senior profile by owning account
func (r *ProfileRepository) GetSeniorByAccountID(ctx context.Context, accountID int64) (*models.SeniorProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM senior_profiles WHERE account_id = $1`, seniorColumns)

	profile, err := scanSenior(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("accountID", accountID).Msg("Error scanning senior profile row")
		return nil, fmt.Errorf("error retrieving senior profile: %w", err)
	}
	return profile, nil
}

// GetJuniorByAccountID retrieves a junior profile by owning account
func (r *ProfileRepository) GetJuniorByAccountID(ctx context.Context, accountID int64) (*models.JuniorProfile, error) {
	profile := &models.JuniorProfile{}
	query := `
		SELECT id, account_id, full_name, email, phone
		FROM junior_profiles
		WHERE account_id = $1`
	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&profile.ID, &profile.AccountID, &profile.FullName, &profile.Email, &profile.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("accountID", accountID).Msg("Error scanning junior profile row")
		return nil, fmt.Errorf("error retrieving junior profile: %w", err)
	}
	return profile, nil
}

// ListSeniorsByRole returns senior profiles whose role matches exactly.
// The match is case-sensitive; no match yields an empty slice.
func (r *ProfileRepository) ListSeniorsByRole(ctx context.Context, role string) ([]*models.SeniorProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM senior_profiles WHERE role = $1 ORDER BY id`, seniorColumns)

	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		logger.Error().Err(err).Str("role", role).Msg("Error querying seniors by role")
		return nil, fmt.Errorf("error listing seniors by role: %w", err)
	}
	defer rows.Close()

	profiles := []*models.SeniorProfile{}
	for rows.Next() {
		profile, err := scanSenior(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning senior profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating senior profiles: %w", err)
	}

	return profiles, nil
}

// UpdateSenior applies a partial update to a senior profile. Fields left nil
// in the request keep their stored values.
func (r *ProfileRepository) UpdateSenior(ctx context.Context, accountID int64, req *dto.UpdateProfileRequest) error {
	query := `
		UPDATE senior_profiles SET
			full_name  = COALESCE($2, full_name),
			phone      = COALESCE($3, phone),
			department = COALESCE($4, department),
			role       = COALESCE($5, role),
			bio        = COALESCE($6, bio),
			photo      = COALESCE($7, photo),
			whatsapp   = COALESCE($8, whatsapp),
			github     = COALESCE($9, github),
			linkedin   = COALESCE($10, linkedin)
		WHERE account_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, accountID,
		req.FullName, req.Phone, req.Department, req.Role, req.Bio,
		req.Photo, req.Whatsapp, req.Github, req.Linkedin)
	if err != nil {
		logger.Error().Err(err).Int64("accountID", accountID).Msg("Error executing senior profile update")
		return fmt.Errorf("error updating senior profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}

// scanSenior scans one senior profile row
func scanSenior(row pgx.Row) (*models.SeniorProfile, error) {
	profile := &models.SeniorProfile{}
	err := row.Scan(
		&profile.ID, &profile.AccountID, &profile.FullName, &profile.Email, &profile.Phone,
		&profile.Department, &profile.Role, &profile.Bio, &profile.Photo,
		&profile.Whatsapp, &profile.Github, &profile.Linkedin)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
