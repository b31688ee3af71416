package entity

// FilterAll is the categorical wildcard value used by list views
const FilterAll = "all"

// DoctorFilter is a domain-level filter for the doctor list.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Search string // matches name or specialization
	Status string // "all", "" or a DoctorStatus
}

// SlotFilter filters the slot list
type SlotFilter struct {
	Search   string // matches doctor name, date or time
	DoctorID string // "all", "" or a doctor id
	Date     string // Format: YYYY-MM-DD, empty matches all
}

// AppointmentFilter filters the appointment list
type AppointmentFilter struct {
	Search   string // matches patient name or doctor name
	DoctorID string
	Status   string
	Date     string // Format: YYYY-MM-DD
}

// PatientFilter filters the patient list
type PatientFilter struct {
	Search string // matches name, email or phone
}

// NotificationTab selects which notifications are listed
type NotificationTab string

const (
	NotificationTabAll    NotificationTab = "all"
	NotificationTabUnread NotificationTab = "unread"
)

// NotificationFilter filters the notification inbox
type NotificationFilter struct {
	Tab  NotificationTab
	Type string
}
