package usecase

import (
	"context"
	"testing"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentUsecase_ListAppointmentsByStatus(t *testing.T) {
	f := newFixture(t)
	uc := NewAppointmentUsecase(f.log, f.appointments, f.doctors, f.patients, f.audit, StatusPolicyFree)
	ctx := context.Background()

	res, err := uc.ListAppointments(ctx, &dto.AppointmentListRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a6"}, appointmentIDs(res))

	res, err = uc.ListAppointments(ctx, &dto.AppointmentListRequest{Status: "all", DoctorID: "all"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"}, appointmentIDs(res))
}

func TestAppointmentUsecase_FreeStatusChanges(t *testing.T) {
	f := newFixture(t)
	uc := NewAppointmentUsecase(f.log, f.appointments, f.doctors, f.patients, f.audit, StatusPolicyFree)
	ctx := context.Background()

	// a4 is completed; the free policy lets it go back to confirmed
	res, err := uc.UpdateAppointmentStatus(ctx, "a4", &dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", res.Status)
	assert.Equal(t, []string{entity.AuditActionAppointmentStatus}, f.auditActions(t))
}

func TestAppointmentUsecase_StrictStatusChanges(t *testing.T) {
	f := newFixture(t)
	uc := NewAppointmentUsecase(f.log, f.appointments, f.doctors, f.patients, f.audit, StatusPolicyStrict)
	ctx := context.Background()

	_, err := uc.UpdateAppointmentStatus(ctx, "a4", &dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	got, err := uc.GetAppointment(ctx, "a4")
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)

	res, err := uc.UpdateAppointmentStatus(ctx, "a1", &dto.UpdateAppointmentStatusRequest{Status: "no-show"})
	require.NoError(t, err)
	assert.Equal(t, "no-show", res.Status)
}

func TestAppointmentUsecase_UpdateStatusErrors(t *testing.T) {
	f := newFixture(t)
	uc := NewAppointmentUsecase(f.log, f.appointments, f.doctors, f.patients, f.audit, StatusPolicyFree)
	ctx := context.Background()

	_, err := uc.UpdateAppointmentStatus(ctx, "a1", &dto.UpdateAppointmentStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidAppointmentStatus)

	_, err = uc.UpdateAppointmentStatus(ctx, "a99", &dto.UpdateAppointmentStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAppointmentUsecase_CreateAppointmentDenormalizes(t *testing.T) {
	f := newFixture(t)
	uc := NewAppointmentUsecase(f.log, f.appointments, f.doctors, f.patients, f.audit, StatusPolicyFree)
	doctors := NewDoctorUsecase(f.log, f.doctors, f.audit)
	ctx := context.Background()

	res, err := uc.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
		PatientID: "p2",
		DoctorID:  "d3",
		Date:      "2025-03-18",
		Time:      "11:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, "a8", res.ID)
	assert.Equal(t, "Maria Garcia", res.PatientName)
	assert.Equal(t, "Dr. Michael Chen", res.DoctorName)
	assert.Equal(t, "Pediatrics", res.Specialization)
	assert.Equal(t, "confirmed", res.Status)

	// renaming the doctor does not touch the copy
	_, err = doctors.UpdateDoctor(ctx, "d3", &dto.UpdateDoctorRequest{Name: strPtr("Dr. M. Chen")})
	require.NoError(t, err)

	got, err := uc.GetAppointment(ctx, "a8")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Michael Chen", got.DoctorName)
}

func TestAppointmentUsecase_CreateAppointmentUnknownRefs(t *testing.T) {
	f := newFixture(t)
	uc := NewAppointmentUsecase(f.log, f.appointments, f.doctors, f.patients, f.audit, StatusPolicyFree)
	ctx := context.Background()

	_, err := uc.CreateAppointment(ctx, &dto.CreateAppointmentRequest{PatientID: "p99", DoctorID: "d1", Date: "2025-03-18", Time: "9:00 AM"})
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = uc.CreateAppointment(ctx, &dto.CreateAppointmentRequest{PatientID: "p1", DoctorID: "d99", Date: "2025-03-18", Time: "9:00 AM"})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestAppointmentUsecase_DeleteAppointment(t *testing.T) {
	f := newFixture(t)
	uc := NewAppointmentUsecase(f.log, f.appointments, f.doctors, f.patients, f.audit, StatusPolicyFree)
	ctx := context.Background()

	require.NoError(t, uc.DeleteAppointment(ctx, "a7"))
	assert.ErrorIs(t, uc.DeleteAppointment(ctx, "a7"), ErrAppointmentNotFound)

	res, err := uc.ListAppointments(ctx, &dto.AppointmentListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 6, res.Total)
}
