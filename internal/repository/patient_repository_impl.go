package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/filter"
	domainRepo "hospital-admin/internal/domain/repository"
)

const patientIDPrefix = "p"

type patientRepository struct {
	table *memoryTable[entity.Patient]
}

func NewPatientRepository(seed []entity.Patient) domainRepo.PatientRepository {
	return &patientRepository{table: newMemoryTable(patientIDPrefix, seed)}
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	patient, ok := r.table.find(id)
	if !ok {
		return nil, nil
	}
	return patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context, f *entity.PatientFilter) ([]entity.Patient, error) {
	patients := r.table.snapshot()
	if f == nil {
		return filter.Apply(patients), nil
	}
	return filter.Apply(patients,
		filter.Text(f.Search,
			func(p entity.Patient) string { return p.Name },
			func(p entity.Patient) string { return p.Email },
			func(p entity.Patient) string { return p.Phone },
		),
	), nil
}

func (r *patientRepository) Count(ctx context.Context) (int, error) {
	return len(r.table.snapshot()), nil
}
