package repository

import (
	"context"
	"sync"

	"hospital-admin/internal/domain/entity"
	domainRepo "hospital-admin/internal/domain/repository"
)

type hospitalProfileRepository struct {
	mu      sync.RWMutex
	profile entity.HospitalProfile
}

func NewHospitalProfileRepository(seed entity.HospitalProfile) domainRepo.HospitalProfileRepository {
	return &hospitalProfileRepository{profile: seed.Clone()}
}

func (r *hospitalProfileRepository) Get(ctx context.Context) (*entity.HospitalProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile := r.profile.Clone()
	return &profile, nil
}

func (r *hospitalProfileRepository) Save(ctx context.Context, profile *entity.HospitalProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = profile.Clone()
	return nil
}
