package dto

// Request DTOs

type CreateSlotRequest struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=available booked"`
}

type UpdateSlotStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available booked"`
}

type SlotListRequest struct {
	Search   string `json:"search" validate:"omitempty"`
	DoctorID string `json:"doctor" validate:"omitempty"`
	Date     string `json:"date" validate:"omitempty"`
}

// Response DTOs

type SlotResponse struct {
	ID         string `json:"id"`
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

// SlotGridRow holds one doctor's slots aligned to SlotGridResponse.Times.
// A nil entry means the doctor has no slot at that time.
type SlotGridRow struct {
	DoctorID   string          `json:"doctor_id"`
	DoctorName string          `json:"doctor_name"`
	Slots      []*SlotResponse `json:"slots"`
}

type SlotGridResponse struct {
	Times []string      `json:"times"`
	Rows  []SlotGridRow `json:"rows"`
}
