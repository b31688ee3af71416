package converter

import (
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
)

// HospitalProfileToResponse converts the profile entity to its DTO
func HospitalProfileToResponse(profile *entity.HospitalProfile) *dto.HospitalProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.HospitalProfileResponse{
		Name:       profile.Name,
		Address:    profile.Address,
		Phone:      profile.Phone,
		Email:      profile.Email,
		Ambulance:  profile.Ambulance,
		Facilities: append([]string{}, profile.Facilities...),
		Logo:       profile.Logo,
	}
}

// FacilitiesToResponses marks each catalog entry selected when the profile lists it
func FacilitiesToResponses(catalog []entity.Facility, profile *entity.HospitalProfile) []dto.FacilityResponse {
	responses := make([]dto.FacilityResponse, len(catalog))
	for i, f := range catalog {
		responses[i] = dto.FacilityResponse{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
			Selected:    profile != nil && profile.HasFacility(f.ID),
		}
	}
	return responses
}

// ApplyHospitalProfileUpdate merges the fields present in req into profile
func ApplyHospitalProfileUpdate(profile entity.HospitalProfile, req *dto.UpdateHospitalProfileRequest) entity.HospitalProfile {
	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Ambulance != nil {
		profile.Ambulance = *req.Ambulance
	}
	if req.Facilities != nil {
		profile.Facilities = uniqueFacilities(*req.Facilities)
	}
	if req.Logo != nil {
		profile.Logo = *req.Logo
	}
	return profile
}

// uniqueFacilities drops repeated ids, keeping the first occurrence
func uniqueFacilities(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
