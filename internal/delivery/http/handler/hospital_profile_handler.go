package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/response"
	"hospital-admin/pkg/validator"

	"github.com/gorilla/mux"
)

type HospitalProfileHandler struct {
	profileUsecase usecase.HospitalProfileUsecase
	validator      *validator.CustomValidator
}

func NewHospitalProfileHandler(profileUsecase usecase.HospitalProfileUsecase, validator *validator.CustomValidator) *HospitalProfileHandler {
	return &HospitalProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

func (h *HospitalProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.GetProfile(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get hospital profile")
		return
	}

	response.Success(w, http.StatusOK, "Hospital profile retrieved successfully", profile)
}

func (h *HospitalProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateHospitalProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.UpdateProfile(r.Context(), &req)
	if err != nil {
		h.writeSaveError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Hospital profile updated successfully", profile)
}

func (h *HospitalProfileHandler) ToggleFacility(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.ToggleFacility(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeSaveError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Facility toggled successfully", profile)
}

func (h *HospitalProfileHandler) GetFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.profileUsecase.ListFacilities(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get facilities")
		return
	}

	response.Success(w, http.StatusOK, "Facilities retrieved successfully", facilities)
}

func (h *HospitalProfileHandler) writeSaveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrFacilityNotFound):
		response.NotFound(w, "Facility not found")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		response.Error(w, http.StatusRequestTimeout, "Save cancelled", nil)
	default:
		response.InternalServerError(w, "Failed to save hospital profile")
	}
}
