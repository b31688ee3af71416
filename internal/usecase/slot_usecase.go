package usecase

import (
	"context"
	"errors"
	"sort"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/filter"
	"hospital-admin/internal/domain/repository"
	"hospital-admin/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrSlotNotFound      = errors.New("slot not found")
	ErrDoctorNotSelected = errors.New("Please select a doctor")
	ErrDoctorInactive    = errors.New("doctor is inactive")
	ErrInvalidSlotStatus = errors.New("invalid slot status")
)

type SlotUsecase interface {
	ListSlots(ctx context.Context, req *dto.SlotListRequest) (*dto.SlotListResponse, error)
	SlotGrid(ctx context.Context, req *dto.SlotListRequest) (*dto.SlotGridResponse, error)
	GetSlot(ctx context.Context, id string) (*dto.SlotResponse, error)
	CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
	UpdateSlotStatus(ctx context.Context, id string, req *dto.UpdateSlotStatusRequest) (*dto.SlotResponse, error)
	DeleteSlot(ctx context.Context, id string) error
}

type slotUsecase struct {
	log          *logrus.Logger
	slotRepo     repository.SlotRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewSlotUsecase(
	log *logrus.Logger,
	slotRepo repository.SlotRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) SlotUsecase {
	return &slotUsecase{
		log:          log,
		slotRepo:     slotRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func slotFilter(req *dto.SlotListRequest) *entity.SlotFilter {
	return &entity.SlotFilter{
		Search:   req.Search,
		DoctorID: req.DoctorID,
		Date:     req.Date,
	}
}

func (u *slotUsecase) ListSlots(ctx context.Context, req *dto.SlotListRequest) (*dto.SlotListResponse, error) {
	slots, err := u.slotRepo.FindAll(ctx, slotFilter(req))
	if err != nil {
		u.log.Warnf("Failed to find slots: %+v", err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// SlotGrid lays the filtered slots out as one row per doctor over the sorted
// set of distinct times. When several slots share a doctor and time, the
// first in list order fills the cell.
func (u *slotUsecase) SlotGrid(ctx context.Context, req *dto.SlotListRequest) (*dto.SlotGridResponse, error) {
	slots, err := u.slotRepo.FindAll(ctx, slotFilter(req))
	if err != nil {
		u.log.Warnf("Failed to find slots: %+v", err)
		return nil, err
	}

	doctors, err := u.doctorRepo.FindAll(ctx, nil)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	doctors = filter.Apply(doctors, filter.Category(req.DoctorID, func(d entity.Doctor) string { return d.ID }))

	seen := make(map[string]bool)
	times := make([]string, 0)
	for _, s := range slots {
		if !seen[s.Time] {
			seen[s.Time] = true
			times = append(times, s.Time)
		}
	}
	sort.Strings(times)

	rows := make([]dto.SlotGridRow, 0, len(doctors))
	for _, d := range doctors {
		row := dto.SlotGridRow{
			DoctorID:   d.ID,
			DoctorName: d.Name,
			Slots:      make([]*dto.SlotResponse, len(times)),
		}
		for i, t := range times {
			for j := range slots {
				if slots[j].DoctorID == d.ID && slots[j].Time == t {
					row.Slots[i] = converter.SlotToResponse(&slots[j])
					break
				}
			}
		}
		rows = append(rows, row)
	}

	return &dto.SlotGridResponse{
		Times: times,
		Rows:  rows,
	}, nil
}

func (u *slotUsecase) GetSlot(ctx context.Context, id string) (*dto.SlotResponse, error) {
	slot, err := u.slotRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find slot: %+v", err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	return converter.SlotToResponse(slot), nil
}

// CreateSlot copies the doctor's current name into the new slot
func (u *slotUsecase) CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	if req.DoctorID == "" {
		return nil, ErrDoctorNotSelected
	}

	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.IsActive() {
		return nil, ErrDoctorInactive
	}

	status := entity.SlotStatus(req.Status)
	if status == "" {
		status = entity.SlotStatusAvailable
	}

	slot := &entity.Slot{
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Date:       req.Date,
		Time:       req.Time,
		Status:     status,
	}
	if err := u.slotRepo.Create(ctx, slot); err != nil {
		u.log.Warnf("Failed to create slot: %+v", err)
		return nil, err
	}

	res := converter.SlotToResponse(slot)
	if err := u.auditService.LogCreate(ctx, entity.AuditActionSlotCreate, "slot", slot.ID, res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Slot %s created for doctor %s", slot.ID, doctor.ID)
	return res, nil
}

func (u *slotUsecase) UpdateSlotStatus(ctx context.Context, id string, req *dto.UpdateSlotStatusRequest) (*dto.SlotResponse, error) {
	status := entity.SlotStatus(req.Status)
	if status != entity.SlotStatusAvailable && status != entity.SlotStatusBooked {
		return nil, ErrInvalidSlotStatus
	}

	old, err := u.slotRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find slot: %+v", err)
		return nil, err
	}
	if old == nil {
		return nil, ErrSlotNotFound
	}

	slot, err := u.slotRepo.Update(ctx, id, func(s entity.Slot) entity.Slot {
		s.Status = status
		return s
	})
	if err != nil {
		u.log.Warnf("Failed to update slot: %+v", err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	res := converter.SlotToResponse(slot)
	if err := u.auditService.LogUpdate(ctx, entity.AuditActionSlotUpdate, "slot", id, converter.SlotToResponse(old), res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return res, nil
}

func (u *slotUsecase) DeleteSlot(ctx context.Context, id string) error {
	old, err := u.slotRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find slot: %+v", err)
		return err
	}
	if old == nil {
		return ErrSlotNotFound
	}

	rowsAffected, err := u.slotRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete slot: %+v", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditActionSlotDelete, "slot", id, converter.SlotToResponse(old)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}
