package handler

import (
	"net/http"
	"strconv"

	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardUsecase.Summary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard summary")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard summary retrieved successfully", summary)
}

func (h *DashboardHandler) GetAppointmentStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.AppointmentStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointment stats")
		return
	}

	response.Success(w, http.StatusOK, "Appointment stats retrieved successfully", stats)
}

func (h *DashboardHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := h.dashboardUsecase.Charts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get charts")
		return
	}

	response.Success(w, http.StatusOK, "Charts retrieved successfully", charts)
}

func (h *DashboardHandler) GetRecentAppointments(w http.ResponseWriter, r *http.Request) {
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}

	appointments, err := h.dashboardUsecase.RecentAppointments(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get recent appointments")
		return
	}

	response.Success(w, http.StatusOK, "Recent appointments retrieved successfully", appointments)
}

func (h *DashboardHandler) GetTopDoctors(w http.ResponseWriter, r *http.Request) {
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}

	doctors, err := h.dashboardUsecase.TopDoctors(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get top doctors")
		return
	}

	response.Success(w, http.StatusOK, "Top doctors retrieved successfully", doctors)
}

// limitParam reads ?limit=; zero means the use case default
func limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		response.Error(w, http.StatusBadRequest, "Invalid limit", nil)
		return 0, false
	}
	return limit, true
}
