package http

import (
	"net/http"

	"hospital-admin/internal/delivery/http/handler"
	"hospital-admin/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                 *mux.Router
	authHandler            *handler.AuthHandler
	dashboardHandler       *handler.DashboardHandler
	doctorHandler          *handler.DoctorHandler
	slotHandler            *handler.SlotHandler
	appointmentHandler     *handler.AppointmentHandler
	patientHandler         *handler.PatientHandler
	notificationHandler    *handler.NotificationHandler
	hospitalProfileHandler *handler.HospitalProfileHandler
	auditLogHandler        *handler.AuditLogHandler
	authMiddleware         *middleware.AuthMiddleware
	corsMiddleware         *middleware.CORSMiddleware
	loggerMiddleware       *middleware.LoggerMiddleware
	metricsMiddleware      *middleware.MetricsMiddleware
	rateLimiter            *middleware.RateLimiter
}

func NewRouter(
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	doctorHandler *handler.DoctorHandler,
	slotHandler *handler.SlotHandler,
	appointmentHandler *handler.AppointmentHandler,
	patientHandler *handler.PatientHandler,
	notificationHandler *handler.NotificationHandler,
	hospitalProfileHandler *handler.HospitalProfileHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggerMiddleware *middleware.LoggerMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		router:                 mux.NewRouter(),
		authHandler:            authHandler,
		dashboardHandler:       dashboardHandler,
		doctorHandler:          doctorHandler,
		slotHandler:            slotHandler,
		appointmentHandler:     appointmentHandler,
		patientHandler:         patientHandler,
		notificationHandler:    notificationHandler,
		hospitalProfileHandler: hospitalProfileHandler,
		auditLogHandler:        auditLogHandler,
		authMiddleware:         authMiddleware,
		corsMiddleware:         corsMiddleware,
		loggerMiddleware:       loggerMiddleware,
		metricsMiddleware:      metricsMiddleware,
		rateLimiter:            rateLimiter,
	}
}

func (r *Router) Setup() *mux.Router {
	// Prometheus scrape endpoint, outside the API prefix
	r.router.Handle("/metrics", r.metricsMiddleware.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Dashboard
	admin.HandleFunc("/dashboard/summary", r.dashboardHandler.GetSummary).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard/stats", r.dashboardHandler.GetAppointmentStats).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard/charts", r.dashboardHandler.GetCharts).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard/recent-appointments", r.dashboardHandler.GetRecentAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard/top-doctors", r.dashboardHandler.GetTopDoctors).Methods(http.MethodGet)

	// Doctor management
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Slot management; /slots/grid must come before /slots/{id}
	admin.HandleFunc("/slots", r.slotHandler.CreateSlot).Methods(http.MethodPost)
	admin.HandleFunc("/slots", r.slotHandler.GetAllSlots).Methods(http.MethodGet)
	admin.HandleFunc("/slots/grid", r.slotHandler.GetSlotGrid).Methods(http.MethodGet)
	admin.HandleFunc("/slots/{id}", r.slotHandler.GetSlot).Methods(http.MethodGet)
	admin.HandleFunc("/slots/{id}", r.slotHandler.DeleteSlot).Methods(http.MethodDelete)
	admin.HandleFunc("/slots/{id}/status", r.slotHandler.UpdateSlotStatus).Methods(http.MethodPatch)

	// Appointment management
	admin.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	admin.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	admin.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)

	// Patients
	admin.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// Notifications
	admin.HandleFunc("/notifications", r.notificationHandler.GetAllNotifications).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/unread-count", r.notificationHandler.GetUnreadCount).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/read-all", r.notificationHandler.MarkAllAsRead).Methods(http.MethodPost)
	admin.HandleFunc("/notifications/{id}/read", r.notificationHandler.MarkAsRead).Methods(http.MethodPatch)

	// Hospital profile
	admin.HandleFunc("/hospital-profile", r.hospitalProfileHandler.GetProfile).Methods(http.MethodGet)
	admin.HandleFunc("/hospital-profile", r.hospitalProfileHandler.UpdateProfile).Methods(http.MethodPut)
	admin.HandleFunc("/hospital-profile/facilities/{id}/toggle", r.hospitalProfileHandler.ToggleFacility).Methods(http.MethodPost)
	admin.HandleFunc("/facilities", r.hospitalProfileHandler.GetFacilities).Methods(http.MethodGet)

	// Audit logs
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Outermost first; Recover sits inside logging and metrics so panics are counted as 500s
	r.router.Use(middleware.RequestID)
	r.router.Use(r.loggerMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)
	r.router.Use(r.loggerMiddleware.Recover)
	r.router.Use(r.rateLimiter.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
