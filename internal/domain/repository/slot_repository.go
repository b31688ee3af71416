package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
)

type SlotRepository interface {
	Create(ctx context.Context, slot *entity.Slot) error
	FindByID(ctx context.Context, id string) (*entity.Slot, error)
	FindAll(ctx context.Context, filter *entity.SlotFilter) ([]entity.Slot, error)
	Update(ctx context.Context, id string, apply func(entity.Slot) entity.Slot) (*entity.Slot, error)
	Delete(ctx context.Context, id string) (int64, error)
	CountByStatus(ctx context.Context, status entity.SlotStatus) (int, error)
}
