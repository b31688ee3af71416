package usecase

import (
	"context"
	"errors"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
)

// PatientUsecase is read only; patients are never edited from the console
type PatientUsecase interface {
	ListPatients(ctx context.Context, search string) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context, search string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, &entity.PatientFilter{Search: search})
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}
