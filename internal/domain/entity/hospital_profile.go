package entity

// Facility is an entry of the fixed facility catalog
type Facility struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HospitalProfile holds the single hospital record shown on the profile page
type HospitalProfile struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Ambulance  string   `json:"ambulance"`
	Facilities []string `json:"facilities"`
	Logo       string   `json:"logo"`
}

// HasFacility checks if facility id is selected
func (p *HospitalProfile) HasFacility(id string) bool {
	for _, f := range p.Facilities {
		if f == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that does not share the facilities slice
func (p HospitalProfile) Clone() HospitalProfile {
	p.Facilities = append([]string{}, p.Facilities...)
	return p
}
