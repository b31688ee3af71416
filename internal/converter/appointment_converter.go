package converter

import (
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:             appointment.ID,
		PatientID:      appointment.PatientID,
		PatientName:    appointment.PatientName,
		DoctorID:       appointment.DoctorID,
		DoctorName:     appointment.DoctorName,
		Specialization: appointment.Specialization,
		Date:           appointment.Date,
		Time:           appointment.Time,
		Status:         string(appointment.Status),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
