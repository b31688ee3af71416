package dto

// Response DTOs

type PatientResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	AppointmentCount int    `json:"appointment_count"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
