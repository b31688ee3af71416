package converter

import (
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:               doctor.ID,
		Name:             doctor.Name,
		Specialization:   doctor.Specialization,
		Timings:          doctor.Timings,
		Status:           string(doctor.Status),
		Image:            doctor.Image,
		PatientCount:     doctor.PatientCount,
		AppointmentCount: doctor.AppointmentCount,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// ApplyDoctorUpdate merges the fields present in req into doctor
func ApplyDoctorUpdate(doctor entity.Doctor, req *dto.UpdateDoctorRequest) entity.Doctor {
	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.Timings != nil {
		doctor.Timings = *req.Timings
	}
	if req.Status != nil {
		doctor.Status = entity.DoctorStatus(*req.Status)
	}
	if req.Image != nil {
		doctor.Image = *req.Image
	}
	return doctor
}
