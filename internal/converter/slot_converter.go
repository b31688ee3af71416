package converter

import (
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
)

// SlotToResponse converts a Slot entity to SlotResponse DTO
func SlotToResponse(slot *entity.Slot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.SlotResponse{
		ID:         slot.ID,
		DoctorID:   slot.DoctorID,
		DoctorName: slot.DoctorName,
		Date:       slot.Date,
		Time:       slot.Time,
		Status:     string(slot.Status),
	}
}

// SlotsToResponses converts a slice of Slot entities to slice of SlotResponse DTOs
func SlotsToResponses(slots []entity.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i := range slots {
		responses[i] = *SlotToResponse(&slots[i])
	}
	return responses
}
