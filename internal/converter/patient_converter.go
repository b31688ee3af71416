package converter

import (
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.ID,
		Name:             patient.Name,
		Phone:            patient.Phone,
		Email:            patient.Email,
		AppointmentCount: patient.AppointmentCount,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
