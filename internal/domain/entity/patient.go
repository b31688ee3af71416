package entity

// Patient is read-only reference data for appointments
type Patient struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	AppointmentCount int    `json:"appointment_count"`
}

func (p Patient) GetID() string {
	return p.ID
}
