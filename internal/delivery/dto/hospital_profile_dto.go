package dto

// Request DTOs

type UpdateHospitalProfileRequest struct {
	Name       *string   `json:"name" validate:"omitempty,min=2"`
	Address    *string   `json:"address" validate:"omitempty"`
	Phone      *string   `json:"phone" validate:"omitempty,max=30"`
	Email      *string   `json:"email" validate:"omitempty,email"`
	Ambulance  *string   `json:"ambulance" validate:"omitempty,max=30"`
	Facilities *[]string `json:"facilities" validate:"omitempty"`
	Logo       *string   `json:"logo" validate:"omitempty"`
}

// Response DTOs

type HospitalProfileResponse struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Ambulance  string   `json:"ambulance"`
	Facilities []string `json:"facilities"`
	Logo       string   `json:"logo"`
}

type FacilityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Selected    bool   `json:"selected"`
}

type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	Total      int                `json:"total"`
}
