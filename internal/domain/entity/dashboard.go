package entity

// ChartPoint is one bar of the monthly appointment chart
type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DoctorPerformance is one entry of the doctor performance chart
type DoctorPerformance struct {
	Name         string `json:"name"`
	Appointments int    `json:"appointments"`
	Patients     int    `json:"patients"`
}

// DashboardCharts holds the static trend series served by the dashboard
type DashboardCharts struct {
	Monthly     []ChartPoint
	Performance []DoctorPerformance
}
