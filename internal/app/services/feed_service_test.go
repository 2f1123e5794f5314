package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/app/models/dto"
	"github.com/gradchat/gradchat/internal/pkg/apperrors"
)

type fakePostStore struct {
	posts  []*models.Post
	nextID int64
}

func (f *fakePostStore) Create(_ context.Context, post *models.Post) error {
	f.nextID++
	post.ID = f.nextID
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakePostStore) ListByAccountID(_ context.Context, accountID int64) ([]*models.Post, error) {
	out := []*models.Post{}
	for _, p := range f.posts {
		if p.AccountID == accountID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeEventStore struct {
	events []*models.Event
	nextID int64
}

func (f *fakeEventStore) Create(_ context.Context, event *models.Event) error {
	f.nextID++
	event.ID = f.nextID
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEventStore) ListByAccountID(_ context.Context, accountID int64) ([]*models.Event, error) {
	out := []*models.Event{}
	for _, e := range f.events {
		if e.AccountID == accountID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventStore) ListAll(_ context.Context) ([]*models.Event, error) {
	return append([]*models.Event{}, f.events...), nil
}

type fakeBroadcaster struct {
	snapshots [][]*models.Event
}

func (f *fakeBroadcaster) BroadcastSnapshot(events []*models.Event) {
	f.snapshots = append(f.snapshots, events)
}

func newFeedFixture() (*FeedService, *fakePostStore, *fakeEventStore, *fakeBroadcaster) {
	posts := &fakePostStore{}
	events := &fakeEventStore{}
	bc := &fakeBroadcaster{}
	svc := NewFeedService(posts, events, bc, zerolog.Nop())
	return svc, posts, events, bc
}

func TestCreatePost(t *testing.T) {
	svc, posts, _, bc := newFeedFixture()

	post, err := svc.CreatePost(context.Background(), 3, &dto.CreatePostRequest{
		Title: "Resume tips",
		Body:  "Keep it to one page.",
		Image: "uploads/resume.png",
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), post.AccountID)
	require.Len(t, posts.posts, 1)

	// post creation never touches the live channel
	require.Empty(t, bc.snapshots)
}

func TestCreatePostMissingField(t *testing.T) {
	svc, posts, _, _ := newFeedFixture()

	_, err := svc.CreatePost(context.Background(), 3, &dto.CreatePostRequest{
		Title: "Resume tips",
		Body:  "   ",
		Image: "uploads/resume.png",
	})
	require.ErrorIs(t, err, apperrors.ErrMissingFields)
	require.Empty(t, posts.posts)
}

func TestCreateEventBroadcastsFullSet(t *testing.T) {
	svc, _, events, bc := newFeedFixture()

	_, err := svc.CreateEvent(context.Background(), 1, &dto.CreateEventRequest{
		Title:       "Mock interviews",
		Description: "Practice rounds with seniors",
		Date:        "2026-09-12",
	})
	require.NoError(t, err)

	_, err = svc.CreateEvent(context.Background(), 2, &dto.CreateEventRequest{
		Title:       "Hackathon kickoff",
		Description: "Team formation and rules",
		Date:        "2026-09-20",
	})
	require.NoError(t, err)

	require.Len(t, events.events, 2)
	require.Len(t, bc.snapshots, 2)
	// every broadcast carries the full current set, not a delta
	require.Len(t, bc.snapshots[0], 1)
	require.Len(t, bc.snapshots[1], 2)
}

func TestCreateEventMissingField(t *testing.T) {
	svc, _, events, bc := newFeedFixture()

	_, err := svc.CreateEvent(context.Background(), 1, &dto.CreateEventRequest{
		Title:       "",
		Description: "desc",
		Date:        "2026-09-12",
	})
	require.ErrorIs(t, err, apperrors.ErrMissingFields)
	require.Empty(t, events.events)
	require.Empty(t, bc.snapshots)
}

func TestListPostsScopedToOwner(t *testing.T) {
	svc, _, _, _ := newFeedFixture()

	_, err := svc.CreatePost(context.Background(), 1, &dto.CreatePostRequest{Title: "a", Body: "b", Image: "c"})
	require.NoError(t, err)
	_, err = svc.CreatePost(context.Background(), 2, &dto.CreatePostRequest{Title: "d", Body: "e", Image: "f"})
	require.NoError(t, err)

	mine, err := svc.ListPosts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "a", mine[0].Title)

	none, err := svc.ListPosts(context.Background(), 99)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestListEventsScopedToOwner(t *testing.T) {
	svc, _, _, _ := newFeedFixture()

	_, err := svc.CreateEvent(context.Background(), 1, &dto.CreateEventRequest{Title: "a", Description: "b", Date: "c"})
	require.NoError(t, err)

	none, err := svc.ListEvents(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}
