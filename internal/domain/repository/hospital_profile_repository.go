package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
)

type HospitalProfileRepository interface {
	Get(ctx context.Context) (*entity.HospitalProfile, error)
	Save(ctx context.Context, profile *entity.HospitalProfile) error
}
