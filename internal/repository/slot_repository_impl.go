package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/filter"
	domainRepo "hospital-admin/internal/domain/repository"
)

const slotIDPrefix = "s"

type slotRepository struct {
	table *memoryTable[entity.Slot]
}

func NewSlotRepository(seed []entity.Slot) domainRepo.SlotRepository {
	return &slotRepository{table: newMemoryTable(slotIDPrefix, seed)}
}

func (r *slotRepository) Create(ctx context.Context, slot *entity.Slot) error {
	*slot = r.table.insert(func(id string) entity.Slot {
		s := *slot
		s.ID = id
		return s
	})
	return nil
}

func (r *slotRepository) FindByID(ctx context.Context, id string) (*entity.Slot, error) {
	slot, ok := r.table.find(id)
	if !ok {
		return nil, nil
	}
	return slot, nil
}

// FindAll supports search over doctor name, date and time plus the doctor
// and date selectors.
func (r *slotRepository) FindAll(ctx context.Context, f *entity.SlotFilter) ([]entity.Slot, error) {
	slots := r.table.snapshot()
	if f == nil {
		return filter.Apply(slots), nil
	}
	return filter.Apply(slots,
		filter.Text(f.Search,
			func(s entity.Slot) string { return s.DoctorName },
			func(s entity.Slot) string { return s.Date },
			func(s entity.Slot) string { return s.Time },
		),
		filter.Category(f.DoctorID, func(s entity.Slot) string { return s.DoctorID }),
		filter.Date(f.Date, func(s entity.Slot) string { return s.Date }),
	), nil
}

func (r *slotRepository) Update(ctx context.Context, id string, apply func(entity.Slot) entity.Slot) (*entity.Slot, error) {
	slot, ok := r.table.update(id, apply)
	if !ok {
		return nil, nil
	}
	return slot, nil
}

func (r *slotRepository) Delete(ctx context.Context, id string) (int64, error) {
	if !r.table.remove(id) {
		return 0, nil
	}
	return 1, nil
}

func (r *slotRepository) CountByStatus(ctx context.Context, status entity.SlotStatus) (int, error) {
	return filter.Count(r.table.snapshot(), func(s entity.Slot) bool {
		return s.Status == status
	}), nil
}
