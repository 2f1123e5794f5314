package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/db"
	"github.com/gradchat/gradchat/internal/pkg/apperrors"
	"github.com/gradchat/gradchat/internal/pkg/dberrors"
	"github.com/gradchat/gradchat/internal/pkg/logger"
)

// AccountRepository handles account database operations
type AccountRepository struct {
	database *db.PostgresDB
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(database *db.PostgresDB) *AccountRepository {
	return &AccountRepository{database: database}
}

// CreateWithJuniorProfile creates an account and its junior profile in a
// single transaction and returns the new account ID.
func (r *AccountRepository) CreateWithJuniorProfile(ctx context.Context, account *models.Account, profile *models.JuniorProfile) (int64, error) {
	var accountID int64

	err := r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, err := insertAccount(ctx, tx, account)
		if err != nil {
			return err
		}
		accountID = id

		query := `
			INSERT INTO junior_profiles (account_id, full_name, email, phone)
			VALUES ($1, $2, $3, $4)`
		_, err = tx.Exec(ctx, query, id, profile.FullName, profile.Email, profile.Phone)
		if err != nil {
			return fmt.Errorf("error creating junior profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return accountID, nil
}

// CreateWithSeniorProfile creates an account and its senior profile in a
// single transaction and returns the new account ID.
func (r *AccountRepository) CreateWithSeniorProfile(ctx context.Context, account *models.Account, profile *models.SeniorProfile) (int64, error) {
	var accountID int64

	err := r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, err := insertAccount(ctx, tx, account)
		if err != nil {
			return err
		}
		accountID = id

		query := `
			INSERT INTO senior_profiles (account_id, full_name, email, phone, department, role, bio, photo, whatsapp, github, linkedin)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
		_, err = tx.Exec(ctx, query,
			id, profile.FullName, profile.Email, profile.Phone, profile.Department,
			profile.Role, profile.Bio, profile.Photo, profile.Whatsapp, profile.Github, profile.Linkedin)
		if err != nil {
			return fmt.Errorf("error creating senior profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return accountID, nil
}

// insertAccount inserts the account row and returns its ID
func insertAccount(ctx context.Context, tx pgx.Tx, account *models.Account) (int64, error) {
	var id int64
	query := `
		INSERT INTO accounts (email, password, created_at, updated_at, is_active)
		VALUES ($1, $2, NOW(), NOW(), TRUE)
		RETURNING id`
	err := tx.QueryRow(ctx, query, account.Email, account.Password).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "accounts_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating account: %w", err)
	}
	return id, nil
}

// GetByEmail retrieves an account by email address
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	account := &models.Account{}
	query := `
		SELECT id, email, password, created_at, updated_at, is_active, last_login_at
		FROM accounts
		WHERE email = $1`
	err := r.database.Pool.QueryRow(ctx, query, email).Scan(
		&account.ID, &account.Email, &account.Password,
		&account.CreatedAt, &account.UpdatedAt, &account.IsActive, &account.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning account row")
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}
	return account, nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	account := &models.Account{}
	query := `
		SELECT id, email, password, created_at, updated_at, is_active, last_login_at
		FROM accounts
		WHERE id = $1`
	err := r.database.Pool.QueryRow(ctx, query, id).Scan(
		&account.ID, &account.Email, &account.Password,
		&account.CreatedAt, &account.UpdatedAt, &account.IsActive, &account.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		logger.Error().Err(err).Int64("accountID", id).Msg("Error scanning account row")
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}
	return account, nil
}

// UpdateLastLogin stamps the account's last successful login time
func (r *AccountRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	query := `UPDATE accounts SET last_login_at = $1, updated_at = $1 WHERE id = $2`
	cmdTag, err := r.database.Pool.Exec(ctx, query, time.Now(), id)
	if err != nil {
		logger.Error().Err(err).Int64("accountID", id).Msg("Error updating last login")
		return fmt.Errorf("error updating last login: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}
