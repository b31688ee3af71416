package handler

import (
	"encoding/json"
	"net/http"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/response"
	"hospital-admin/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.AppointmentListRequest{
		Search:   query.Get("search"),
		DoctorID: query.Get("doctor"),
		Status:   query.Get("status"),
		Date:     query.Get("date"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidAppointmentStatus:
			response.BadRequest(w, "Invalid appointment status")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointmentStatus(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidAppointmentStatus:
			response.BadRequest(w, "Invalid appointment status")
		case usecase.ErrInvalidStatusTransition:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), mux.Vars(r)["id"]); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}
