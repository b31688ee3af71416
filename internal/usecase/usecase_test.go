package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"
	"hospital-admin/internal/infrastructure/seed"
	repoImpl "hospital-admin/internal/repository"
	"hospital-admin/internal/service"

	"github.com/sirupsen/logrus"
)

// fixture wires every use case against a fresh copy of the seed data
type fixture struct {
	log          *logrus.Logger
	doctors      repository.DoctorRepository
	slots        repository.SlotRepository
	appointments repository.AppointmentRepository
	patients     repository.PatientRepository
	notes        repository.NotificationRepository
	profile      repository.HospitalProfileRepository
	charts       entity.DashboardCharts
	auditLogs    repository.AuditLogRepository
	audit        service.AuditService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	data := seed.Load()
	auditLogs := repoImpl.NewMemoryAuditLogRepository()
	return &fixture{
		log:          log,
		doctors:      repoImpl.NewDoctorRepository(data.Doctors),
		slots:        repoImpl.NewSlotRepository(data.Slots),
		appointments: repoImpl.NewAppointmentRepository(data.Appointments),
		patients:     repoImpl.NewPatientRepository(data.Patients),
		notes:        repoImpl.NewNotificationRepository(data.Notifications),
		profile:      repoImpl.NewHospitalProfileRepository(data.Profile),
		charts:       data.Charts,
		auditLogs:    auditLogs,
		audit:        service.NewAuditService(log, auditLogs),
	}
}

func (f *fixture) auditActions(t *testing.T) []string {
	t.Helper()
	logs, err := f.auditLogs.FindAll(context.Background())
	if err != nil {
		t.Fatalf("audit logs: %v", err)
	}
	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action)
	}
	return actions
}

func fixedClock(day string) Clock {
	return func() time.Time {
		ts, _ := time.Parse("2006-01-02", day)
		return ts
	}
}

func strPtr(s string) *string {
	return &s
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}
	return out
}

func doctorIDs(res *dto.DoctorListResponse) []string {
	return ids(res.Doctors, func(d dto.DoctorResponse) string { return d.ID })
}

func appointmentIDs(res *dto.AppointmentListResponse) []string {
	return ids(res.Appointments, func(a dto.AppointmentResponse) string { return a.ID })
}
