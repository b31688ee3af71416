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
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
	ErrInvalidStatusTransition  = errors.New("appointment status transition not allowed")
)

// StatusPolicy decides whether an appointment may move to a new status
type StatusPolicy int

const (
	// StatusPolicyFree allows every status to follow every other
	StatusPolicyFree StatusPolicy = iota
	// StatusPolicyStrict only allows the edges of the appointment transition table
	StatusPolicyStrict
)

func (p StatusPolicy) allows(a *entity.Appointment, next entity.AppointmentStatus) bool {
	if p == StatusPolicyStrict {
		return a.CanTransitionTo(next)
	}
	return true
}

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, req *dto.AppointmentListRequest) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, id string, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id string) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	auditService    service.AuditService
	policy          StatusPolicy
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	policy StatusPolicy,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		auditService:    auditService,
		policy:          policy,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, req *dto.AppointmentListRequest) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx, &entity.AppointmentFilter{
		Search:   req.Search,
		DoctorID: req.DoctorID,
		Status:   req.Status,
		Date:     req.Date,
	})
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CreateAppointment copies the patient name, doctor name and specialization
// as they are now. Later renames are not propagated.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	status := entity.AppointmentStatus(req.Status)
	if status == "" {
		status = entity.AppointmentStatusConfirmed
	}
	if !entity.IsValidAppointmentStatus(status) {
		return nil, ErrInvalidAppointmentStatus
	}

	appointment := &entity.Appointment{
		PatientID:      patient.ID,
		PatientName:    patient.Name,
		DoctorID:       doctor.ID,
		DoctorName:     doctor.Name,
		Specialization: doctor.Specialization,
		Date:           req.Date,
		Time:           req.Time,
		Status:         status,
	}
	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	res := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogCreate(ctx, entity.AuditActionAppointmentCreate, "appointment", appointment.ID, res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Appointment %s created", appointment.ID)
	return res, nil
}

func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, id string, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	next := entity.AppointmentStatus(req.Status)
	if !entity.IsValidAppointmentStatus(next) {
		return nil, ErrInvalidAppointmentStatus
	}

	old, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if old == nil {
		return nil, ErrAppointmentNotFound
	}

	var rejected bool
	appointment, err := u.appointmentRepo.Update(ctx, id, func(a entity.Appointment) entity.Appointment {
		// checked against the stored record so concurrent changes are not lost
		if !u.policy.allows(&a, next) {
			rejected = true
			return a
		}
		a.Status = next
		return a
	})
	if err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if rejected {
		u.log.Warnf("Rejected appointment %s transition %s -> %s", id, appointment.Status, next)
		return nil, ErrInvalidStatusTransition
	}

	res := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogUpdate(ctx, entity.AuditActionAppointmentStatus, "appointment", id, string(old.Status), string(next)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return res, nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id string) error {
	old, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if old == nil {
		return ErrAppointmentNotFound
	}

	rowsAffected, err := u.appointmentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditActionAppointmentDelete, "appointment", id, converter.AppointmentToResponse(old)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}
