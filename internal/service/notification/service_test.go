package notification

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craneworks/craneops-backend-go/internal/domain/notification"
	"github.com/craneworks/craneops-backend-go/internal/pkg/sse"
)

type fakeRepo struct {
	mu       sync.Mutex
	inserted []*notification.Notification
	batches  int
}

func (f *fakeRepo) CreateBatch(ctx context.Context, notifications []*notification.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, notifications...)
	f.batches++
	return nil
}

func (f *fakeRepo) GetByUserID(ctx context.Context, userID string, page, pageSize int, unreadOnly bool) ([]*notification.Notification, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*notification.Notification
	for _, n := range f.inserted {
		if n.RecipientID == userID && (!unreadOnly || !n.IsRead) {
			out = append(out, n)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepo) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.inserted {
		if n.RecipientID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) MarkAsRead(ctx context.Context, ids []string, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.inserted {
		for _, id := range ids {
			if n.ID == id && n.RecipientID == userID {
				n.IsRead = true
			}
		}
	}
	return nil
}

func (f *fakeRepo) MarkAllAsRead(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.inserted {
		if n.RecipientID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (f *fakeRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inserted)
}

func newTestService(t *testing.T, repo *fakeRepo, cfg Config) *Service {
	t.Helper()
	s := NewService(repo, sse.NewHub(), slog.Default(), cfg)
	t.Cleanup(s.Stop)
	return s
}

func TestQueue_BatchesInserts(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(t, repo, Config{FlushInterval: 10 * time.Millisecond})

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Queue(context.Background(), notification.CreateNotificationRequest{
			RecipientID: "emp-1",
			Type:        notification.TypeTaskAssigned,
			Title:       "Ny opgave",
		}))
	}

	require.Eventually(t, func() bool { return repo.count() == 5 },
		2*time.Second, 10*time.Millisecond)
}

func TestQueue_FullQueueFallsBackToDirectInsert(t *testing.T) {
	repo := &fakeRepo{}
	// A single-slot queue with single-item batches: overflow goes through
	// the direct insert path, queued items flush one by one.
	s := NewService(repo, sse.NewHub(), slog.Default(), Config{
		QueueSize:   1,
		WorkerCount: 1,
		BatchSize:   1,
	})
	defer s.Stop()

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Queue(ctx, notification.CreateNotificationRequest{
			RecipientID: "emp-1",
			Type:        notification.TypeTaskAssigned,
			Title:       "Ny opgave",
		}))
	}

	require.Eventually(t, func() bool { return repo.count() == 10 },
		2*time.Second, 10*time.Millisecond)
}

func TestQueue_PublishesToSubscriber(t *testing.T) {
	repo := &fakeRepo{}
	hub := sse.NewHub()
	s := NewService(repo, hub, slog.Default(), Config{FlushInterval: 10 * time.Millisecond})
	defer s.Stop()

	events, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	require.NoError(t, s.Queue(context.Background(), notification.CreateNotificationRequest{
		RecipientID: "emp-1",
		Type:        notification.TypeHoursConfirmed,
		Title:       "Timer godkendt",
	}))

	select {
	case event := <-events:
		assert.Equal(t, sse.EventNotification, event.Name)
		assert.Equal(t, "emp-1", event.EmployeeID)
		assert.Equal(t, "Timer godkendt", event.Payload.Title)
		assert.Equal(t, notification.TypeHoursConfirmed, event.Payload.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no SSE event received")
	}
}

func TestList_CountsUnread(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(t, repo, Config{FlushInterval: time.Hour})

	ctx := context.Background()
	require.NoError(t, repo.CreateBatch(ctx, []*notification.Notification{
		{ID: "n1", RecipientID: "emp-1", Title: "a"},
		{ID: "n2", RecipientID: "emp-1", Title: "b"},
		{ID: "n3", RecipientID: "emp-2", Title: "c"},
	}))

	require.NoError(t, s.MarkAsRead(ctx, "emp-1", notification.MarkAsReadRequest{NotificationIDs: []string{"n1"}}))

	result, err := s.List(ctx, "emp-1", 1, 20, false)
	require.NoError(t, err)
	assert.Len(t, result.Notifications, 2)
	assert.Equal(t, 1, result.UnreadCount)

	require.NoError(t, s.MarkAllAsRead(ctx, "emp-1"))
	result, err = s.List(ctx, "emp-1", 1, 20, false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.UnreadCount)
}
