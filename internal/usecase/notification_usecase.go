package usecase

import (
	"context"
	"errors"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"
	"hospital-admin/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, req *dto.NotificationListRequest) (*dto.NotificationListResponse, error)
	MarkAsRead(ctx context.Context, id string) (*dto.NotificationResponse, error)
	MarkAllAsRead(ctx context.Context) (*dto.MarkAllReadResponse, error)
	UnreadCount(ctx context.Context) (*dto.UnreadCountResponse, error)
}

type notificationUsecase struct {
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
	auditService     service.AuditService
}

func NewNotificationUsecase(
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
	auditService service.AuditService,
) NotificationUsecase {
	return &notificationUsecase{
		log:              log,
		notificationRepo: notificationRepo,
		auditService:     auditService,
	}
}

func (u *notificationUsecase) ListNotifications(ctx context.Context, req *dto.NotificationListRequest) (*dto.NotificationListResponse, error) {
	tab := entity.NotificationTab(req.Tab)
	if tab == "" {
		tab = entity.NotificationTabAll
	}

	notifications, err := u.notificationRepo.FindAll(ctx, &entity.NotificationFilter{
		Tab:  tab,
		Type: req.Type,
	})
	if err != nil {
		u.log.Warnf("Failed to find notifications: %+v", err)
		return nil, err
	}

	unread, err := u.notificationRepo.CountUnread(ctx)
	if err != nil {
		u.log.Warnf("Failed to count unread notifications: %+v", err)
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Total:         len(notifications),
		Unread:        unread,
	}, nil
}

func (u *notificationUsecase) MarkAsRead(ctx context.Context, id string) (*dto.NotificationResponse, error) {
	notification, err := u.notificationRepo.MarkRead(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to mark notification read: %+v", err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	if err := u.auditService.LogUpdate(ctx, entity.AuditActionNotificationRead, "notification", id, nil, true); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.NotificationToResponse(notification), nil
}

func (u *notificationUsecase) MarkAllAsRead(ctx context.Context) (*dto.MarkAllReadResponse, error) {
	marked, err := u.notificationRepo.MarkAllRead(ctx)
	if err != nil {
		u.log.Warnf("Failed to mark all notifications read: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, entity.AuditActionNotificationAll, "notification", "*", nil, marked); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.MarkAllReadResponse{Marked: marked}, nil
}

func (u *notificationUsecase) UnreadCount(ctx context.Context) (*dto.UnreadCountResponse, error) {
	unread, err := u.notificationRepo.CountUnread(ctx)
	if err != nil {
		u.log.Warnf("Failed to count unread notifications: %+v", err)
		return nil, err
	}

	return &dto.UnreadCountResponse{Unread: unread}, nil
}
