package usecase

import (
	"context"
	"testing"

	"hospital-admin/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationUsecase_ListTabs(t *testing.T) {
	f := newFixture(t)
	uc := NewNotificationUsecase(f.log, f.notes, f.audit)
	ctx := context.Background()

	all, err := uc.ListNotifications(ctx, &dto.NotificationListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 5, all.Total)
	assert.Equal(t, 3, all.Unread)

	unread, err := uc.ListNotifications(ctx, &dto.NotificationListRequest{Tab: "unread"})
	require.NoError(t, err)
	assert.Equal(t, 3, unread.Total)
	for _, n := range unread.Notifications {
		assert.False(t, n.Read)
	}

	reminders, err := uc.ListNotifications(ctx, &dto.NotificationListRequest{Type: "reminder"})
	require.NoError(t, err)
	require.Equal(t, 1, reminders.Total)
	assert.Equal(t, "n5", reminders.Notifications[0].ID)
}

func TestNotificationUsecase_MarkAsRead(t *testing.T) {
	f := newFixture(t)
	uc := NewNotificationUsecase(f.log, f.notes, f.audit)
	ctx := context.Background()

	res, err := uc.MarkAsRead(ctx, "n1")
	require.NoError(t, err)
	assert.True(t, res.Read)

	// marking an already read notification keeps it read
	res, err = uc.MarkAsRead(ctx, "n2")
	require.NoError(t, err)
	assert.True(t, res.Read)

	_, err = uc.MarkAsRead(ctx, "n99")
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	count, err := uc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count.Unread)
}

func TestNotificationUsecase_MarkAllAsRead(t *testing.T) {
	f := newFixture(t)
	uc := NewNotificationUsecase(f.log, f.notes, f.audit)
	ctx := context.Background()

	res, err := uc.MarkAllAsRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Marked)

	unread, err := uc.ListNotifications(ctx, &dto.NotificationListRequest{Tab: "unread"})
	require.NoError(t, err)
	assert.Zero(t, unread.Total)
	assert.NotNil(t, unread.Notifications)

	res, err = uc.MarkAllAsRead(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.Marked)
}
