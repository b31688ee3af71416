package entity

// SlotStatus represents the booking state of a slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
)

// Slot represents a bookable time on a doctor's calendar.
// DoctorName is copied from the doctor when the slot is created and is not
// refreshed if the doctor is renamed later.
type Slot struct {
	ID         string     `json:"id"`
	DoctorID   string     `json:"doctor_id"`
	DoctorName string     `json:"doctor_name"`
	Date       string     `json:"date"` // Format: YYYY-MM-DD
	Time       string     `json:"time"`
	Status     SlotStatus `json:"status"`
}

func (s Slot) GetID() string {
	return s.ID
}

// IsAvailable checks if slot can still be booked
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotStatusAvailable
}

// IsBooked checks if slot is booked
func (s *Slot) IsBooked() bool {
	return s.Status == SlotStatusBooked
}
