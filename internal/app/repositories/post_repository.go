package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/pkg/logger"
)

// PostRepository handles post database operations
type PostRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new post and fills in its generated fields
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	sql, args, err := r.sb.Insert("posts").
		Columns("account_id", "title", "body", "image").
		Values(post.AccountID, post.Title, post.Body, post.Image).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create post SQL")
		return fmt.Errorf("failed to build create post query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("accountID", post.AccountID).Msg("Error executing create post query")
		return fmt.Errorf("error creating post: %w", err)
	}

	return nil
}

// ListByAccountID returns every post owned by the given account. No match
// yields an empty slice.
func (r *PostRepository) ListByAccountID(ctx context.Context, accountID int64) ([]*models.Post, error) {
	sql, args, err := r.sb.Select("id", "account_id", "title", "body", "image", "created_at").
		From("posts").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list posts SQL")
		return nil, fmt.Errorf("failed to build list posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("accountID", accountID).Msg("Error querying posts")
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(&post.ID, &post.AccountID, &post.Title, &post.Body, &post.Image, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}
