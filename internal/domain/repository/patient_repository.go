package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
)

type PatientRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Patient, error)
	FindAll(ctx context.Context, filter *entity.PatientFilter) ([]entity.Patient, error)
	Count(ctx context.Context) (int, error)
}
