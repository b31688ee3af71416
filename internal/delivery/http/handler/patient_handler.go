package handler

import (
	"net/http"

	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/response"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
	}
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.ListPatients(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patient, err := h.patientUsecase.GetPatient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}
