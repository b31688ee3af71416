package usecase

import (
	"context"
	"errors"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditLogRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
