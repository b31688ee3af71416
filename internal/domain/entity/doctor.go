package entity

// DoctorStatus represents whether a doctor can receive new slots
type DoctorStatus string

const (
	DoctorStatusActive   DoctorStatus = "active"
	DoctorStatusInactive DoctorStatus = "inactive"
)

// DefaultDoctorImage is used when a doctor is created without an image
const DefaultDoctorImage = "https://images.pexels.com/photos/5452201/pexels-photo-5452201.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"

// Doctor represents a doctor managed from the admin console
type Doctor struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Specialization   string       `json:"specialization"`
	Timings          string       `json:"timings"`
	Status           DoctorStatus `json:"status"`
	Image            string       `json:"image"`
	PatientCount     int          `json:"patient_count"`
	AppointmentCount int          `json:"appointment_count"`
}

func (d Doctor) GetID() string {
	return d.ID
}

// IsActive reports whether slots may be created for the doctor
func (d *Doctor) IsActive() bool {
	return d.Status == DoctorStatusActive
}
