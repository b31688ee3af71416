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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// GetAllDoctors supports ?search= and ?status=all|active|inactive
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.DoctorListRequest{
		Search: query.Get("search"),
		Status: query.Get("status"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.doctorUsecase.ListDoctors(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	if err := h.doctorUsecase.DeleteDoctor(r.Context(), mux.Vars(r)["id"]); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to delete doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}
