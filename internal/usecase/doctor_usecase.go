package usecase

import (
	"context"
	"errors"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"
	"hospital-admin/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, req *dto.DoctorListRequest) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, id string, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id string) error
}

type doctorUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, req *dto.DoctorListRequest) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx, &entity.DoctorFilter{
		Search: req.Search,
		Status: req.Status,
	})
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		Name:           req.Name,
		Specialization: req.Specialization,
		Timings:        req.Timings,
		Status:         entity.DoctorStatus(req.Status),
		Image:          req.Image,
	}
	if doctor.Status == "" {
		doctor.Status = entity.DoctorStatusActive
	}
	if doctor.Image == "" {
		doctor.Image = entity.DefaultDoctorImage
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	res := converter.DoctorToResponse(doctor)
	if err := u.auditService.LogCreate(ctx, entity.AuditActionDoctorCreate, "doctor", doctor.ID, res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Doctor %s created", doctor.ID)
	return res, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id string, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	old, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if old == nil {
		return nil, ErrDoctorNotFound
	}

	doctor, err := u.doctorRepo.Update(ctx, id, func(d entity.Doctor) entity.Doctor {
		return converter.ApplyDoctorUpdate(d, req)
	})
	if err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		// deleted between the lookup and the update
		return nil, ErrDoctorNotFound
	}

	res := converter.DoctorToResponse(doctor)
	if err := u.auditService.LogUpdate(ctx, entity.AuditActionDoctorUpdate, "doctor", id, converter.DoctorToResponse(old), res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return res, nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id string) error {
	old, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if old == nil {
		return ErrDoctorNotFound
	}

	rowsAffected, err := u.doctorRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrDoctorNotFound
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditActionDoctorDelete, "doctor", id, converter.DoctorToResponse(old)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Doctor %s deleted", id)
	return nil
}
