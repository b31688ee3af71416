package service

import (
	"context"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"
	"hospital-admin/pkg/requestctx"

	"github.com/sirupsen/logrus"
)

// AuditService records console mutations. The acting admin is read from ctx.
type AuditService interface {
	LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, action string, entityName string, entityID string, oldValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) error {
	return s.write(ctx, action, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.write(ctx, action, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, action string, entityName string, entityID string, oldValue interface{}) error {
	return s.write(ctx, action, entityName, entityID, oldValue, nil)
}

func (s *auditService) write(ctx context.Context, action, entityName, entityID string, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		Action: action,
		Metadata: entity.JSON{
			"entity":    entityName,
			"entity_id": entityID,
			"old_value": oldValue,
			"new_value": newValue,
		},
	}
	if userID, ok := requestctx.UserID(ctx); ok {
		auditLog.UserID = &userID
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
