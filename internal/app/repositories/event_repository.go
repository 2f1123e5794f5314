package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/pkg/logger"
)

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new event and fills in its generated fields
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	sql, args, err := r.sb.Insert("events").
		Columns("account_id", "title", "description", "event_date").
		Values(event.AccountID, event.Title, event.Description, event.Date).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create event SQL")
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("accountID", event.AccountID).Msg("Error executing create event query")
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// ListByAccountID returns every event owned by the given account. No match
// yields an empty slice.
func (r *EventRepository) ListByAccountID(ctx context.Context, accountID int64) ([]*models.Event, error) {
	sql, args, err := r.sb.Select("id", "account_id", "title", "description", "event_date", "created_at").
		From("events").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list events SQL")
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	return r.queryEvents(ctx, sql, args...)
}

// ListAll returns the full event set across all owners, the payload of
// every live feed snapshot.
func (r *EventRepository) ListAll(ctx context.Context) ([]*models.Event, error) {
	sql, args, err := r.sb.Select("id", "account_id", "title", "description", "event_date", "created_at").
		From("events").
		OrderBy("id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list all events SQL")
		return nil, fmt.Errorf("failed to build list all events query: %w", err)
	}

	return r.queryEvents(ctx, sql, args...)
}

// queryEvents runs an event select and scans the result set
func (r *EventRepository) queryEvents(ctx context.Context, sql string, args ...interface{}) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying events")
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(&event.ID, &event.AccountID, &event.Title, &event.Description, &event.Date, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}
