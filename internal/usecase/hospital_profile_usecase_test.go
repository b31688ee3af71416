package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/infrastructure/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHospitalProfileUsecase_ToggleFacility(t *testing.T) {
	f := newFixture(t)
	uc := NewHospitalProfileUsecase(f.log, f.profile, f.audit, seed.Facilities(), 0)
	ctx := context.Background()

	res, err := uc.ToggleFacility(ctx, "mri")
	require.NoError(t, err)
	assert.Contains(t, res.Facilities, "mri")

	res, err = uc.ToggleFacility(ctx, "icu")
	require.NoError(t, err)
	assert.NotContains(t, res.Facilities, "icu")

	_, err = uc.ToggleFacility(ctx, "spa")
	assert.ErrorIs(t, err, ErrFacilityNotFound)

	list, err := uc.ListFacilities(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, list.Total)
	selected := map[string]bool{}
	for _, fac := range list.Facilities {
		selected[fac.ID] = fac.Selected
	}
	assert.True(t, selected["mri"])
	assert.False(t, selected["icu"])

	assert.Equal(t, []string{entity.AuditActionProfileFacility, entity.AuditActionProfileFacility}, f.auditActions(t))
}

func TestHospitalProfileUsecase_UpdateProfileIsPartial(t *testing.T) {
	f := newFixture(t)
	uc := NewHospitalProfileUsecase(f.log, f.profile, f.audit, seed.Facilities(), 0)
	ctx := context.Background()

	before, err := uc.GetProfile(ctx)
	require.NoError(t, err)

	res, err := uc.UpdateProfile(ctx, &dto.UpdateHospitalProfileRequest{Phone: strPtr("555-000-1111")})
	require.NoError(t, err)
	assert.Equal(t, "555-000-1111", res.Phone)
	assert.Equal(t, before.Name, res.Name)
	assert.Equal(t, before.Facilities, res.Facilities)

	unknown := []string{"icu", "spa"}
	_, err = uc.UpdateProfile(ctx, &dto.UpdateHospitalProfileRequest{Facilities: &unknown})
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestHospitalProfileUsecase_UpdateProfileDropsDuplicateFacilities(t *testing.T) {
	f := newFixture(t)
	uc := NewHospitalProfileUsecase(f.log, f.profile, f.audit, seed.Facilities(), 0)
	ctx := context.Background()

	facilities := []string{"icu", "lab", "icu", "lab"}
	res, err := uc.UpdateProfile(ctx, &dto.UpdateHospitalProfileRequest{Facilities: &facilities})
	require.NoError(t, err)
	assert.Equal(t, []string{"icu", "lab"}, res.Facilities)

	res, err = uc.ToggleFacility(ctx, "icu")
	require.NoError(t, err)
	assert.Equal(t, []string{"lab"}, res.Facilities)
}

func TestHospitalProfileUsecase_SaveDelayHonoursCancellation(t *testing.T) {
	f := newFixture(t)
	uc := NewHospitalProfileUsecase(f.log, f.profile, f.audit, seed.Facilities(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.UpdateProfile(ctx, &dto.UpdateHospitalProfileRequest{Name: strPtr("Harbor Clinic")})
	assert.ErrorIs(t, err, context.Canceled)

	got, err := uc.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "City General Hospital", got.Name)
}

func TestHospitalProfileUsecase_SaveDelayCompletes(t *testing.T) {
	f := newFixture(t)
	uc := NewHospitalProfileUsecase(f.log, f.profile, f.audit, seed.Facilities(), 10*time.Millisecond)

	res, err := uc.UpdateProfile(context.Background(), &dto.UpdateHospitalProfileRequest{Name: strPtr("Harbor Clinic")})
	require.NoError(t, err)
	assert.Equal(t, "Harbor Clinic", res.Name)
}
