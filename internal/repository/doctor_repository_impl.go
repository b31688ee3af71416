package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/filter"
	domainRepo "hospital-admin/internal/domain/repository"
)

const doctorIDPrefix = "d"

type doctorRepository struct {
	table *memoryTable[entity.Doctor]
}

func NewDoctorRepository(seed []entity.Doctor) domainRepo.DoctorRepository {
	return &doctorRepository{table: newMemoryTable(doctorIDPrefix, seed)}
}

// Create assigns the next doctor id and appends the doctor
func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	*doctor = r.table.insert(func(id string) entity.Doctor {
		d := *doctor
		d.ID = id
		return d
	})
	return nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	doctor, ok := r.table.find(id)
	if !ok {
		return nil, nil
	}
	return doctor, nil
}

// FindAll returns doctors matching the search text (name or specialization)
// and status, in list order.
func (r *doctorRepository) FindAll(ctx context.Context, f *entity.DoctorFilter) ([]entity.Doctor, error) {
	doctors := r.table.snapshot()
	if f == nil {
		return filter.Apply(doctors), nil
	}
	return filter.Apply(doctors,
		filter.Text(f.Search,
			func(d entity.Doctor) string { return d.Name },
			func(d entity.Doctor) string { return d.Specialization },
		),
		filter.Category(f.Status, func(d entity.Doctor) string { return string(d.Status) }),
	), nil
}

func (r *doctorRepository) Update(ctx context.Context, id string, apply func(entity.Doctor) entity.Doctor) (*entity.Doctor, error) {
	doctor, ok := r.table.update(id, apply)
	if !ok {
		return nil, nil
	}
	return doctor, nil
}

func (r *doctorRepository) Delete(ctx context.Context, id string) (int64, error) {
	if !r.table.remove(id) {
		return 0, nil
	}
	return 1, nil
}

func (r *doctorRepository) Count(ctx context.Context) (int, error) {
	return len(r.table.snapshot()), nil
}
