package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientUsecase(t *testing.T) {
	f := newFixture(t)
	uc := NewPatientUsecase(f.log, f.patients)
	ctx := context.Background()

	res, err := uc.ListPatients(ctx, "garcia")
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "p2", res.Patients[0].ID)

	res, err = uc.ListPatients(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 6, res.Total)

	p, err := uc.GetPatient(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.AppointmentCount)

	_, err = uc.GetPatient(ctx, "p42")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
