package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/filter"
	domainRepo "hospital-admin/internal/domain/repository"
)

const appointmentIDPrefix = "a"

type appointmentRepository struct {
	table *memoryTable[entity.Appointment]
}

func NewAppointmentRepository(seed []entity.Appointment) domainRepo.AppointmentRepository {
	return &appointmentRepository{table: newMemoryTable(appointmentIDPrefix, seed)}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	*appointment = r.table.insert(func(id string) entity.Appointment {
		a := *appointment
		a.ID = id
		return a
	})
	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	appointment, ok := r.table.find(id)
	if !ok {
		return nil, nil
	}
	return appointment, nil
}

// FindAll matches search against patient and doctor names, then applies the
// doctor, status and date selectors.
func (r *appointmentRepository) FindAll(ctx context.Context, f *entity.AppointmentFilter) ([]entity.Appointment, error) {
	appointments := r.table.snapshot()
	if f == nil {
		return filter.Apply(appointments), nil
	}
	return filter.Apply(appointments,
		filter.Text(f.Search,
			func(a entity.Appointment) string { return a.PatientName },
			func(a entity.Appointment) string { return a.DoctorName },
		),
		filter.Category(f.DoctorID, func(a entity.Appointment) string { return a.DoctorID }),
		filter.Category(f.Status, func(a entity.Appointment) string { return string(a.Status) }),
		filter.Date(f.Date, func(a entity.Appointment) string { return a.Date }),
	), nil
}

func (r *appointmentRepository) Update(ctx context.Context, id string, apply func(entity.Appointment) entity.Appointment) (*entity.Appointment, error) {
	appointment, ok := r.table.update(id, apply)
	if !ok {
		return nil, nil
	}
	return appointment, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) (int64, error) {
	if !r.table.remove(id) {
		return 0, nil
	}
	return 1, nil
}
