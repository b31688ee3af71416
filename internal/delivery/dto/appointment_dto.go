package dto

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	DoctorID  string `json:"doctor_id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=confirmed completed cancelled no-show"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled no-show"`
}

type AppointmentListRequest struct {
	Search   string `json:"search" validate:"omitempty"`
	DoctorID string `json:"doctor" validate:"omitempty"`
	Status   string `json:"status" validate:"omitempty"`
	Date     string `json:"date" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             string `json:"id"`
	PatientID      string `json:"patient_id"`
	PatientName    string `json:"patient_name"`
	DoctorID       string `json:"doctor_id"`
	DoctorName     string `json:"doctor_name"`
	Specialization string `json:"specialization"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Status         string `json:"status"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
