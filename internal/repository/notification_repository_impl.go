package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/filter"
	domainRepo "hospital-admin/internal/domain/repository"
)

const notificationIDPrefix = "n"

type notificationRepository struct {
	table *memoryTable[entity.Notification]
}

func NewNotificationRepository(seed []entity.Notification) domainRepo.NotificationRepository {
	return &notificationRepository{table: newMemoryTable(notificationIDPrefix, seed)}
}

func (r *notificationRepository) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	notification, ok := r.table.find(id)
	if !ok {
		return nil, nil
	}
	return notification, nil
}

func (r *notificationRepository) FindAll(ctx context.Context, f *entity.NotificationFilter) ([]entity.Notification, error) {
	notifications := r.table.snapshot()
	if f == nil {
		return filter.Apply(notifications), nil
	}
	return filter.Apply(notifications,
		filter.Flag(f.Tab == entity.NotificationTabUnread, isUnread),
		filter.Category(f.Type, func(n entity.Notification) string { return string(n.Type) }),
	), nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) (*entity.Notification, error) {
	notification, ok := r.table.update(id, markRead)
	if !ok {
		return nil, nil
	}
	return notification, nil
}

// MarkAllRead marks every notification read and returns how many were unread
func (r *notificationRepository) MarkAllRead(ctx context.Context) (int, error) {
	prev := r.table.updateAll(markRead)
	return filter.Count(prev, isUnread), nil
}

func (r *notificationRepository) CountUnread(ctx context.Context) (int, error) {
	return filter.Count(r.table.snapshot(), isUnread), nil
}

func isUnread(n entity.Notification) bool {
	return !n.Read
}

func markRead(n entity.Notification) entity.Notification {
	n.MarkRead()
	return n
}
