package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"hospital-admin/internal/domain/entity"
	domainRepo "hospital-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository persists audit entries to the audit_logs table
func NewAuditLogRepository(db *gorm.DB) domainRepo.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *auditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := r.db.WithContext(ctx).Order("id desc").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := r.db.WithContext(ctx).First(&log, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

type memoryAuditLogRepository struct {
	mu     sync.RWMutex
	logs   []entity.AuditLog
	lastID int64
}

// NewMemoryAuditLogRepository keeps audit entries in process memory. It is
// used when no database is configured.
func NewMemoryAuditLogRepository() domainRepo.AuditLogRepository {
	return &memoryAuditLogRepository{}
}

func (r *memoryAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	log.ID = r.lastID
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	r.logs = append(r.logs, *log)
	return nil
}

// FindAll returns entries newest first
func (r *memoryAuditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	logs := make([]entity.AuditLog, 0, len(r.logs))
	for i := len(r.logs) - 1; i >= 0; i-- {
		logs = append(logs, r.logs[i])
	}
	return logs, nil
}

func (r *memoryAuditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, log := range r.logs {
		if log.ID == id {
			found := log
			return &found, nil
		}
	}
	return nil, nil
}
