package converter

import (
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
)

func AdminToResponse(admin *entity.Admin) *dto.AdminResponse {
	if admin == nil {
		return nil
	}

	return &dto.AdminResponse{
		ID:       admin.ID,
		Email:    admin.Email,
		FullName: admin.FullName,
	}
}
