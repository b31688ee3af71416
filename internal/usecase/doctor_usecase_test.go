package usecase

import (
	"context"
	"testing"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorUsecase_ListDoctors(t *testing.T) {
	f := newFixture(t)
	uc := NewDoctorUsecase(f.log, f.doctors, f.audit)
	ctx := context.Background()

	res, err := uc.ListDoctors(ctx, &dto.DoctorListRequest{Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)

	res, err = uc.ListDoctors(ctx, &dto.DoctorListRequest{Search: "cardio"})
	require.NoError(t, err)
	assert.Equal(t, []string{"d1"}, doctorIDs(res))
}

func TestDoctorUsecase_CreateDoctorDefaults(t *testing.T) {
	f := newFixture(t)
	uc := NewDoctorUsecase(f.log, f.doctors, f.audit)

	res, err := uc.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		Name:           "Dr. Ana Lopez",
		Specialization: "Oncology",
		Timings:        "Mon-Fri, 9AM-1PM",
	})
	require.NoError(t, err)
	assert.Equal(t, "d6", res.ID)
	assert.Equal(t, string(entity.DoctorStatusActive), res.Status)
	assert.Equal(t, entity.DefaultDoctorImage, res.Image)
	assert.Zero(t, res.PatientCount)
	assert.Zero(t, res.AppointmentCount)
	assert.Equal(t, []string{entity.AuditActionDoctorCreate}, f.auditActions(t))
}

func TestDoctorUsecase_UpdateDoctorIsPartial(t *testing.T) {
	f := newFixture(t)
	uc := NewDoctorUsecase(f.log, f.doctors, f.audit)

	res, err := uc.UpdateDoctor(context.Background(), "d2", &dto.UpdateDoctorRequest{Status: strPtr("inactive")})
	require.NoError(t, err)
	assert.Equal(t, "inactive", res.Status)
	assert.Equal(t, "Dr. Sarah Johnson", res.Name)
	assert.Equal(t, "Neurology", res.Specialization)
}

func TestDoctorUsecase_UpdateWithCurrentValuesChangesNothing(t *testing.T) {
	f := newFixture(t)
	uc := NewDoctorUsecase(f.log, f.doctors, f.audit)
	ctx := context.Background()

	before, err := uc.ListDoctors(ctx, &dto.DoctorListRequest{})
	require.NoError(t, err)

	current := before.Doctors[0]
	_, err = uc.UpdateDoctor(ctx, current.ID, &dto.UpdateDoctorRequest{
		Name:           strPtr(current.Name),
		Specialization: strPtr(current.Specialization),
		Timings:        strPtr(current.Timings),
		Status:         strPtr(current.Status),
		Image:          strPtr(current.Image),
	})
	require.NoError(t, err)

	after, err := uc.ListDoctors(ctx, &dto.DoctorListRequest{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDoctorUsecase_NotFound(t *testing.T) {
	f := newFixture(t)
	uc := NewDoctorUsecase(f.log, f.doctors, f.audit)
	ctx := context.Background()

	_, err := uc.GetDoctor(ctx, "d99")
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	_, err = uc.UpdateDoctor(ctx, "d99", &dto.UpdateDoctorRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	assert.ErrorIs(t, uc.DeleteDoctor(ctx, "d99"), ErrDoctorNotFound)

	res, err := uc.ListDoctors(ctx, &dto.DoctorListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
	assert.Empty(t, f.auditActions(t))
}

func TestDoctorUsecase_CreateThenDeleteRestoresList(t *testing.T) {
	f := newFixture(t)
	uc := NewDoctorUsecase(f.log, f.doctors, f.audit)
	ctx := context.Background()

	before, err := uc.ListDoctors(ctx, &dto.DoctorListRequest{})
	require.NoError(t, err)

	created, err := uc.CreateDoctor(ctx, &dto.CreateDoctorRequest{Name: "Dr. Temp", Specialization: "General", Timings: "Sat"})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteDoctor(ctx, created.ID))

	after, err := uc.ListDoctors(ctx, &dto.DoctorListRequest{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
