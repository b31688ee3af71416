package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	Specialization string `json:"specialization" validate:"required"`
	Timings        string `json:"timings" validate:"required"`
	Status         string `json:"status" validate:"omitempty,oneof=active inactive"`
	Image          string `json:"image" validate:"omitempty,url"`
}

// UpdateDoctorRequest is a partial update; only fields present in the body are applied
type UpdateDoctorRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=2"`
	Specialization *string `json:"specialization" validate:"omitempty,min=1"`
	Timings        *string `json:"timings" validate:"omitempty,min=1"`
	Status         *string `json:"status" validate:"omitempty,oneof=active inactive"`
	Image          *string `json:"image" validate:"omitempty,url"`
}

type DoctorListRequest struct {
	Search string `json:"search" validate:"omitempty"`
	Status string `json:"status" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Specialization   string `json:"specialization"`
	Timings          string `json:"timings"`
	Status           string `json:"status"`
	Image            string `json:"image"`
	PatientCount     int    `json:"patient_count"`
	AppointmentCount int    `json:"appointment_count"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
