package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/app/models/dto"
	"github.com/gradchat/gradchat/internal/pkg/apperrors"
)

// PostStore is the post persistence surface the feed service needs
type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	ListByAccountID(ctx context.Context, accountID int64) ([]*models.Post, error)
}

// EventStore is the event persistence surface the feed service needs
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	ListByAccountID(ctx context.Context, accountID int64) ([]*models.Event, error)
	ListAll(ctx context.Context) ([]*models.Event, error)
}

// EventBroadcaster pushes the full current event set to live subscribers
type EventBroadcaster interface {
	BroadcastSnapshot(events []*models.Event)
}

// FeedService handles post and event feeds. Listings are scoped to a single
// owner; event creation additionally refreshes every live subscriber with
// the full global event set. Post creation has no live channel.
type FeedService struct {
	postRepo    PostStore
	eventRepo   EventStore
	broadcaster EventBroadcaster
	logger      zerolog.Logger
}

// NewFeedService creates a new FeedService
func NewFeedService(
	postRepo PostStore,
	eventRepo EventStore,
	broadcaster EventBroadcaster,
	logger zerolog.Logger,
) *FeedService {
	return &FeedService{
		postRepo:    postRepo,
		eventRepo:   eventRepo,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// ListPosts returns every post owned by the given account, empty slice when
// there are none.
func (s *FeedService) ListPosts(ctx context.Context, accountID int64) ([]*models.Post, error) {
	return s.postRepo.ListByAccountID(ctx, accountID)
}

// ListEvents returns every event owned by the given account, empty slice
// when there are none.
func (s *FeedService) ListEvents(ctx context.Context, accountID int64) ([]*models.Event, error) {
	return s.eventRepo.ListByAccountID(ctx, accountID)
}

// CreatePost stores a new post owned by the caller. Every field must be
// non-blank.
func (s *FeedService) CreatePost(ctx context.Context, accountID int64, req *dto.CreatePostRequest) (*models.Post, error) {
	if isBlank(req.Title) || isBlank(req.Body) || isBlank(req.Image) {
		return nil, apperrors.ErrMissingFields
	}

	post := &models.Post{
		AccountID: accountID,
		Title:     req.Title,
		Body:      req.Body,
		Image:     req.Image,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("accountID", accountID).
		Int64("postID", post.ID).
		Msg("Post created")

	return post, nil
}

// CreateEvent stores a new event owned by the caller and broadcasts the
// refreshed global event set to live subscribers. Every field must be
// non-blank.
func (s *FeedService) CreateEvent(ctx context.Context, accountID int64, req *dto.CreateEventRequest) (*models.Event, error) {
	if isBlank(req.Title) || isBlank(req.Description) || isBlank(req.Date) {
		return nil, apperrors.ErrMissingFields
	}

	event := &models.Event{
		AccountID:   accountID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("accountID", accountID).
		Int64("eventID", event.ID).
		Msg("Event created")

	// The write already succeeded; a failed snapshot refresh only delays
	// subscribers until the next broadcast
	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load event set for broadcast")
		return event, nil
	}
	s.broadcaster.BroadcastSnapshot(events)

	return event, nil
}

// isBlank reports whether a required field is empty after trimming
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
