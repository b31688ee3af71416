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

type SlotHandler struct {
	slotUsecase usecase.SlotUsecase
	validator   *validator.CustomValidator
}

func NewSlotHandler(slotUsecase usecase.SlotUsecase, validator *validator.CustomValidator) *SlotHandler {
	return &SlotHandler{
		slotUsecase: slotUsecase,
		validator:   validator,
	}
}

func slotListRequest(r *http.Request) dto.SlotListRequest {
	query := r.URL.Query()
	return dto.SlotListRequest{
		Search:   query.Get("search"),
		DoctorID: query.Get("doctor"),
		Date:     query.Get("date"),
	}
}

func (h *SlotHandler) GetAllSlots(w http.ResponseWriter, r *http.Request) {
	req := slotListRequest(r)
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slots, err := h.slotUsecase.ListSlots(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to get slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

func (h *SlotHandler) GetSlotGrid(w http.ResponseWriter, r *http.Request) {
	req := slotListRequest(r)
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	grid, err := h.slotUsecase.SlotGrid(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to get slot grid")
		return
	}

	response.Success(w, http.StatusOK, "Slot grid retrieved successfully", grid)
}

func (h *SlotHandler) GetSlot(w http.ResponseWriter, r *http.Request) {
	slot, err := h.slotUsecase.GetSlot(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if err == usecase.ErrSlotNotFound {
			response.NotFound(w, "Slot not found")
			return
		}
		response.InternalServerError(w, "Failed to get slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot retrieved successfully", slot)
}

func (h *SlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.slotUsecase.CreateSlot(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotSelected:
			response.ValidationError(w, map[string]string{"doctor_id": err.Error()})
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDoctorInactive:
			response.Conflict(w, "Doctor is inactive")
		default:
			response.InternalServerError(w, "Failed to create slot")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Slot created successfully", slot)
}

func (h *SlotHandler) UpdateSlotStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSlotStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.slotUsecase.UpdateSlotStatus(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		switch err {
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Slot not found")
		case usecase.ErrInvalidSlotStatus:
			response.BadRequest(w, "Invalid slot status")
		default:
			response.InternalServerError(w, "Failed to update slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot updated successfully", slot)
}

func (h *SlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	if err := h.slotUsecase.DeleteSlot(r.Context(), mux.Vars(r)["id"]); err != nil {
		switch err {
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Slot not found")
		default:
			response.InternalServerError(w, "Failed to delete slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot deleted successfully", nil)
}
