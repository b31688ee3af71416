package entity

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

// AppointmentStatuses lists every status in display order
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
	AppointmentStatusNoShow,
}

// Appointment represents a patient visit with a doctor.
// PatientName, DoctorName and Specialization are copies taken at creation time.
type Appointment struct {
	ID             string            `json:"id"`
	PatientID      string            `json:"patient_id"`
	PatientName    string            `json:"patient_name"`
	DoctorID       string            `json:"doctor_id"`
	DoctorName     string            `json:"doctor_name"`
	Specialization string            `json:"specialization"`
	Date           string            `json:"date"` // Format: YYYY-MM-DD
	Time           string            `json:"time"`
	Status         AppointmentStatus `json:"status"`
}

func (a Appointment) GetID() string {
	return a.ID
}

// IsConfirmed checks if appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsCompleted checks if appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsValidAppointmentStatus reports whether s names a known status
func IsValidAppointmentStatus(s AppointmentStatus) bool {
	for _, status := range AppointmentStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// appointmentTransitions lists the edges allowed under strict status handling
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow},
	AppointmentStatusCancelled: {AppointmentStatusConfirmed},
	AppointmentStatusNoShow:    {AppointmentStatusConfirmed},
	AppointmentStatusCompleted: {},
}

// CanTransitionTo reports whether the strict transition table allows moving
// from the current status to next. Keeping the same status is always allowed.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.Status == next {
		return true
	}
	for _, allowed := range appointmentTransitions[a.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}
