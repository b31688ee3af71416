package usecase

import (
	"context"
	"time"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/filter"
	"hospital-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const (
	DefaultRecentAppointments = 5
	DefaultTopDoctors         = 3
)

// Clock returns the current time; tests and SEED_TODAY replace it
type Clock func() time.Time

type DashboardUsecase interface {
	Summary(ctx context.Context) (*dto.DashboardSummaryResponse, error)
	AppointmentStats(ctx context.Context) (*dto.AppointmentStatsResponse, error)
	Charts(ctx context.Context) (*dto.DashboardChartsResponse, error)
	RecentAppointments(ctx context.Context, limit int) (*dto.AppointmentListResponse, error)
	TopDoctors(ctx context.Context, limit int) (*dto.DoctorListResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	slotRepo        repository.SlotRepository
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	charts          entity.DashboardCharts
	now             Clock
}

func NewDashboardUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	slotRepo repository.SlotRepository,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	charts entity.DashboardCharts,
	now Clock,
) DashboardUsecase {
	if now == nil {
		now = time.Now
	}
	return &dashboardUsecase{
		log:             log,
		doctorRepo:      doctorRepo,
		slotRepo:        slotRepo,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		charts:          charts,
		now:             now,
	}
}

// Summary counts are computed from the live store on every call
func (u *dashboardUsecase) Summary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	doctors, err := u.doctorRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}

	today, err := u.appointmentRepo.FindAll(ctx, &entity.AppointmentFilter{
		Date: u.now().Format("2006-01-02"),
	})
	if err != nil {
		u.log.Warnf("Failed to find today's appointments: %+v", err)
		return nil, err
	}

	available, err := u.slotRepo.CountByStatus(ctx, entity.SlotStatusAvailable)
	if err != nil {
		u.log.Warnf("Failed to count available slots: %+v", err)
		return nil, err
	}

	patients, err := u.patientRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	return &dto.DashboardSummaryResponse{
		TotalDoctors:      doctors,
		TodayAppointments: len(today),
		AvailableSlots:    available,
		TotalPatients:     patients,
	}, nil
}

func (u *dashboardUsecase) AppointmentStats(ctx context.Context) (*dto.AppointmentStatsResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx, nil)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	byStatus := make(map[string]int, len(entity.AppointmentStatuses))
	for _, status := range entity.AppointmentStatuses {
		byStatus[string(status)] = filter.Count(appointments,
			filter.Category(string(status), func(a entity.Appointment) string { return string(a.Status) }),
		)
	}

	return &dto.AppointmentStatsResponse{
		Total:    len(appointments),
		ByStatus: byStatus,
	}, nil
}

// Charts serves the static trend series the use case was built with
func (u *dashboardUsecase) Charts(ctx context.Context) (*dto.DashboardChartsResponse, error) {
	monthly := u.charts.Monthly
	performance := u.charts.Performance

	res := &dto.DashboardChartsResponse{
		MonthlyAppointments: make([]dto.ChartPoint, len(monthly)),
		DoctorPerformance:   make([]dto.DoctorPerformancePoint, len(performance)),
	}
	for i, p := range monthly {
		res.MonthlyAppointments[i] = dto.ChartPoint{Name: p.Name, Value: p.Value}
	}
	for i, p := range performance {
		res.DoctorPerformance[i] = dto.DoctorPerformancePoint{
			Name:         p.Name,
			Appointments: p.Appointments,
			Patients:     p.Patients,
		}
	}

	return res, nil
}

// RecentAppointments returns the first limit appointments in list order
func (u *dashboardUsecase) RecentAppointments(ctx context.Context, limit int) (*dto.AppointmentListResponse, error) {
	if limit <= 0 {
		limit = DefaultRecentAppointments
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, nil)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	if len(appointments) > limit {
		appointments = appointments[:limit]
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// TopDoctors returns the first limit doctors in list order
func (u *dashboardUsecase) TopDoctors(ctx context.Context, limit int) (*dto.DoctorListResponse, error) {
	if limit <= 0 {
		limit = DefaultTopDoctors
	}

	doctors, err := u.doctorRepo.FindAll(ctx, nil)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	if len(doctors) > limit {
		doctors = doctors[:limit]
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}
