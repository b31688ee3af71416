// Package seed holds the fixed data set the console starts with.
// Every call returns fresh slices so callers may keep them.
package seed

import "hospital-admin/internal/domain/entity"

// Data bundles every seeded list
type Data struct {
	Doctors       []entity.Doctor
	Slots         []entity.Slot
	Appointments  []entity.Appointment
	Patients      []entity.Patient
	Notifications []entity.Notification
	Profile       entity.HospitalProfile
	Charts        entity.DashboardCharts
}

// Load returns a fresh copy of the full seed set
func Load() Data {
	return Data{
		Doctors:       Doctors(),
		Slots:         Slots(),
		Appointments:  Appointments(),
		Patients:      Patients(),
		Notifications: Notifications(),
		Profile:       HospitalProfile(),
		Charts:        Charts(),
	}
}

func Doctors() []entity.Doctor {
	return []entity.Doctor{
		{
			ID:               "d1",
			Name:             "Dr. John Smith",
			Specialization:   "Cardiology",
			Timings:          "9:00 AM - 5:00 PM",
			Status:           entity.DoctorStatusActive,
			Image:            "https://images.pexels.com/photos/5452201/pexels-photo-5452201.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			PatientCount:     42,
			AppointmentCount: 12,
		},
		{
			ID:               "d2",
			Name:             "Dr. Sarah Johnson",
			Specialization:   "Neurology",
			Timings:          "10:00 AM - 6:00 PM",
			Status:           entity.DoctorStatusActive,
			Image:            "https://images.pexels.com/photos/5214961/pexels-photo-5214961.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			PatientCount:     38,
			AppointmentCount: 8,
		},
		{
			ID:               "d3",
			Name:             "Dr. Michael Chen",
			Specialization:   "Pediatrics",
			Timings:          "8:00 AM - 4:00 PM",
			Status:           entity.DoctorStatusActive,
			Image:            "https://images.pexels.com/photos/4173251/pexels-photo-4173251.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			PatientCount:     65,
			AppointmentCount: 15,
		},
		{
			ID:               "d4",
			Name:             "Dr. Emily Rodriguez",
			Specialization:   "Dermatology",
			Timings:          "11:00 AM - 7:00 PM",
			Status:           entity.DoctorStatusInactive,
			Image:            "https://images.pexels.com/photos/5327585/pexels-photo-5327585.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			PatientCount:     29,
			AppointmentCount: 0,
		},
		{
			ID:               "d5",
			Name:             "Dr. Robert Wilson",
			Specialization:   "Orthopedics",
			Timings:          "9:00 AM - 5:00 PM",
			Status:           entity.DoctorStatusActive,
			Image:            "https://images.pexels.com/photos/5215024/pexels-photo-5215024.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			PatientCount:     51,
			AppointmentCount: 10,
		},
	}
}

func Slots() []entity.Slot {
	return []entity.Slot{
		{ID: "s1", DoctorID: "d1", DoctorName: "Dr. John Smith", Date: "2025-03-15", Time: "9:00 AM", Status: entity.SlotStatusAvailable},
		{ID: "s2", DoctorID: "d1", DoctorName: "Dr. John Smith", Date: "2025-03-15", Time: "10:00 AM", Status: entity.SlotStatusBooked},
		{ID: "s3", DoctorID: "d1", DoctorName: "Dr. John Smith", Date: "2025-03-15", Time: "11:00 AM", Status: entity.SlotStatusAvailable},
		{ID: "s4", DoctorID: "d2", DoctorName: "Dr. Sarah Johnson", Date: "2025-03-15", Time: "10:00 AM", Status: entity.SlotStatusAvailable},
		{ID: "s5", DoctorID: "d2", DoctorName: "Dr. Sarah Johnson", Date: "2025-03-15", Time: "11:00 AM", Status: entity.SlotStatusBooked},
		{ID: "s6", DoctorID: "d3", DoctorName: "Dr. Michael Chen", Date: "2025-03-16", Time: "9:00 AM", Status: entity.SlotStatusAvailable},
		{ID: "s7", DoctorID: "d3", DoctorName: "Dr. Michael Chen", Date: "2025-03-16", Time: "10:00 AM", Status: entity.SlotStatusAvailable},
		{ID: "s8", DoctorID: "d5", DoctorName: "Dr. Robert Wilson", Date: "2025-03-16", Time: "2:00 PM", Status: entity.SlotStatusBooked},
		{ID: "s9", DoctorID: "d5", DoctorName: "Dr. Robert Wilson", Date: "2025-03-16", Time: "3:00 PM", Status: entity.SlotStatusAvailable},
		{ID: "s10", DoctorID: "d1", DoctorName: "Dr. John Smith", Date: "2025-03-16", Time: "4:00 PM", Status: entity.SlotStatusAvailable},
	}
}

func Appointments() []entity.Appointment {
	return []entity.Appointment{
		{ID: "a1", PatientID: "p1", PatientName: "James Wilson", DoctorID: "d1", DoctorName: "Dr. John Smith", Specialization: "Cardiology", Date: "2025-03-15", Time: "10:00 AM", Status: entity.AppointmentStatusConfirmed},
		{ID: "a2", PatientID: "p2", PatientName: "Maria Garcia", DoctorID: "d2", DoctorName: "Dr. Sarah Johnson", Specialization: "Neurology", Date: "2025-03-15", Time: "11:00 AM", Status: entity.AppointmentStatusConfirmed},
		{ID: "a3", PatientID: "p3", PatientName: "Robert Brown", DoctorID: "d5", DoctorName: "Dr. Robert Wilson", Specialization: "Orthopedics", Date: "2025-03-16", Time: "2:00 PM", Status: entity.AppointmentStatusConfirmed},
		{ID: "a4", PatientID: "p4", PatientName: "Jennifer Lee", DoctorID: "d1", DoctorName: "Dr. John Smith", Specialization: "Cardiology", Date: "2025-03-14", Time: "3:00 PM", Status: entity.AppointmentStatusCompleted},
		{ID: "a5", PatientID: "p5", PatientName: "David Miller", DoctorID: "d3", DoctorName: "Dr. Michael Chen", Specialization: "Pediatrics", Date: "2025-03-14", Time: "9:00 AM", Status: entity.AppointmentStatusNoShow},
		{ID: "a6", PatientID: "p6", PatientName: "Susan Martinez", DoctorID: "d2", DoctorName: "Dr. Sarah Johnson", Specialization: "Neurology", Date: "2025-03-14", Time: "2:00 PM", Status: entity.AppointmentStatusCancelled},
		{ID: "a7", PatientID: "p1", PatientName: "James Wilson", DoctorID: "d3", DoctorName: "Dr. Michael Chen", Specialization: "Pediatrics", Date: "2025-03-17", Time: "10:00 AM", Status: entity.AppointmentStatusConfirmed},
	}
}

func Patients() []entity.Patient {
	return []entity.Patient{
		{ID: "p1", Name: "James Wilson", Phone: "555-123-4567", Email: "james.wilson@example.com", AppointmentCount: 2},
		{ID: "p2", Name: "Maria Garcia", Phone: "555-234-5678", Email: "maria.garcia@example.com", AppointmentCount: 1},
		{ID: "p3", Name: "Robert Brown", Phone: "555-345-6789", Email: "robert.brown@example.com", AppointmentCount: 1},
		{ID: "p4", Name: "Jennifer Lee", Phone: "555-456-7890", Email: "jennifer.lee@example.com", AppointmentCount: 1},
		{ID: "p5", Name: "David Miller", Phone: "555-567-8901", Email: "david.miller@example.com", AppointmentCount: 1},
		{ID: "p6", Name: "Susan Martinez", Phone: "555-678-9012", Email: "susan.martinez@example.com", AppointmentCount: 1},
	}
}

func Notifications() []entity.Notification {
	return []entity.Notification{
		{ID: "n1", Title: "New Appointment", Message: "James Wilson scheduled an appointment with Dr. John Smith for March 15, 10:00 AM", Time: "2 hours ago", Read: false, Type: entity.NotificationTypeAppointment},
		{ID: "n2", Title: "Appointment Cancelled", Message: "Susan Martinez cancelled her appointment with Dr. Sarah Johnson on March 14", Time: "4 hours ago", Read: true, Type: entity.NotificationTypeCancellation},
		{ID: "n3", Title: "System Maintenance", Message: "System will undergo maintenance tonight from 2 AM to 4 AM", Time: "1 day ago", Read: false, Type: entity.NotificationTypeSystem},
		{ID: "n4", Title: "Doctor Status Update", Message: "Dr. Emily Rodriguez is now inactive", Time: "2 days ago", Read: true, Type: entity.NotificationTypeSystem},
		{ID: "n5", Title: "Appointment Reminder", Message: "Remind Dr. Michael Chen about his appointments tomorrow", Time: "2 days ago", Read: false, Type: entity.NotificationTypeReminder},
	}
}

func HospitalProfile() entity.HospitalProfile {
	return entity.HospitalProfile{
		Name:       "City General Hospital",
		Address:    "123 Healthcare Avenue, Medical District",
		Phone:      "+1 (555) 123-4567",
		Email:      "info@citygeneralhospital.com",
		Ambulance:  "911",
		Facilities: []string{"icu", "emergency", "pharmacy"},
		Logo:       "https://images.pexels.com/photos/4386466/pexels-photo-4386466.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	}
}

// Facilities is the catalog a hospital profile selects from
func Facilities() []entity.Facility {
	return []entity.Facility{
		{ID: "icu", Name: "ICU", Description: "Intensive Care Unit"},
		{ID: "xray", Name: "X-Ray", Description: "Radiological Imaging"},
		{ID: "lab", Name: "Laboratory", Description: "Medical Testing Facility"},
		{ID: "emergency", Name: "Emergency", Description: "24/7 Emergency Services"},
		{ID: "operation", Name: "Operation Theatre", Description: "Surgical Facilities"},
		{ID: "pharmacy", Name: "Pharmacy", Description: "24/7 Pharmacy Services"},
		{ID: "blood_bank", Name: "Blood Bank", Description: "Blood Storage & Supply"},
		{ID: "mri", Name: "MRI", Description: "Magnetic Resonance Imaging"},
		{ID: "ct_scan", Name: "CT Scan", Description: "Computerized Tomography"},
	}
}

// Charts bundles both dashboard series
func Charts() entity.DashboardCharts {
	return entity.DashboardCharts{
		Monthly:     MonthlyAppointments(),
		Performance: DoctorPerformanceSeries(),
	}
}

// MonthlyAppointments is the appointment trend shown on the dashboard
func MonthlyAppointments() []entity.ChartPoint {
	return []entity.ChartPoint{
		{Name: "Jan", Value: 42},
		{Name: "Feb", Value: 55},
		{Name: "Mar", Value: 70},
		{Name: "Apr", Value: 65},
		{Name: "May", Value: 80},
		{Name: "Jun", Value: 90},
		{Name: "Jul", Value: 85},
	}
}

// DoctorPerformanceSeries is the per-doctor chart shown on the dashboard
func DoctorPerformanceSeries() []entity.DoctorPerformance {
	return []entity.DoctorPerformance{
		{Name: "Dr. Smith", Appointments: 32, Patients: 42},
		{Name: "Dr. Johnson", Appointments: 28, Patients: 38},
		{Name: "Dr. Chen", Appointments: 25, Patients: 65},
		{Name: "Dr. Wilson", Appointments: 20, Patients: 51},
	}
}
