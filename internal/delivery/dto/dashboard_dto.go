package dto

type DashboardSummaryResponse struct {
	TotalDoctors      int `json:"total_doctors"`
	TodayAppointments int `json:"today_appointments"`
	AvailableSlots    int `json:"available_slots"`
	TotalPatients     int `json:"total_patients"`
}

type AppointmentStatsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DoctorPerformancePoint struct {
	Name         string `json:"name"`
	Appointments int    `json:"appointments"`
	Patients     int    `json:"patients"`
}

type DashboardChartsResponse struct {
	MonthlyAppointments []ChartPoint             `json:"monthly_appointments"`
	DoctorPerformance   []DoctorPerformancePoint `json:"doctor_performance"`
}
