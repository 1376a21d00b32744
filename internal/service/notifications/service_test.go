package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	clock := &fakeClock{now: time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)}
	return NewService(nopLogger{}).WithTimeProvider(clock)
}

func TestListSeedsInitialItem(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	feed, err := svc.List(ctx, "device-1")
	require.NoError(t, err)
	require.Len(t, feed, 1)

	seed := feed[0]
	assert.Equal(t, seedTitle, seed.Title)
	assert.Equal(t, domain.CategoryAnnouncement, seed.Category)
	assert.True(t, seed.IsImportant)
	assert.False(t, seed.IsRead)

	// Лента привязана к устройству
	other, err := svc.List(ctx, "device-2")
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.NotEqual(t, seed.ID, other[0].ID)
}

func TestPushPrepends(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Push(ctx, "device-1", domain.NotificationItem{Title: "first"})
	require.NoError(t, err)
	second, err := svc.Push(ctx, "device-1", domain.NotificationItem{Title: "second"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	feed, err := svc.List(ctx, "device-1")
	require.NoError(t, err)
	require.Len(t, feed, 3)

	// Новые элементы первыми, начальное уведомление в конце
	assert.Equal(t, "second", feed[0].Title)
	assert.Equal(t, "first", feed[1].Title)
	assert.Equal(t, seedTitle, feed[2].Title)
}

func TestMarkRead(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	item, err := svc.Push(ctx, "device-1", domain.NotificationItem{Title: "booking"})
	require.NoError(t, err)

	read, err := svc.MarkRead(ctx, "device-1", item.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	feed, err := svc.List(ctx, "device-1")
	require.NoError(t, err)
	assert.True(t, feed[0].IsRead)

	_, err = svc.MarkRead(ctx, "device-1", 9999)
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	// Чужое уведомление для другого устройства не видно
	_, err = svc.MarkRead(ctx, "device-2", item.ID)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestUnreadCount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	count, err := svc.UnreadCount(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "seed item starts unread")

	item, err := svc.Push(ctx, "device-1", domain.NotificationItem{Title: "booking"})
	require.NoError(t, err)

	count, err = svc.UnreadCount(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = svc.MarkRead(ctx, "device-1", item.ID)
	require.NoError(t, err)

	count, err = svc.UnreadCount(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
