package converter

import (
	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"
)

// AdminToResponse converts an Admin entity to DoctorResponse DTO
func AdminToResponse(admin *entity.Admin) *dto.DoctorResponse {
	if admin == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             admin.ID,
		FirstName:      admin.FirstName,
		LastName:       admin.LastName,
		FullName:       admin.FullName(),
		Email:          admin.Email,
		IdentityNumber: admin.IdentityNumber,
		Phone:          admin.Phone,
		IsActive:       admin.IsActive,
		IsRoot:         admin.IsRoot,
		ProfileID:      admin.ProfileID,
		Profile:        ProfileToResponse(admin.Profile),
		CreatedAt:      admin.CreatedAt,
		UpdatedAt:      admin.UpdatedAt,
	}
}

// AdminsToResponses converts a slice of Admin entities to slice of DoctorResponse DTOs
func AdminsToResponses(admins []entity.Admin) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(admins))
	for i := range admins {
		responses[i] = *AdminToResponse(&admins[i])
	}
	return responses
}

func AdminToSimple(admin *entity.Admin) *dto.SimplePersonResponse {
	if admin == nil {
		return nil
	}
	return &dto.SimplePersonResponse{
		ID:       admin.ID,
		FullName: admin.FullName(),
		Phone:    admin.Phone,
	}
}

func AdminsToSimple(admins []entity.Admin) []dto.SimplePersonResponse {
	responses := make([]dto.SimplePersonResponse, len(admins))
	for i := range admins {
		responses[i] = *AdminToSimple(&admins[i])
	}
	return responses
}

func AdminToAuth(admin *entity.Admin) dto.AuthAdmin {
	return dto.AuthAdmin{
		ID:        admin.ID,
		Email:     admin.Email,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		IsRoot:    admin.IsRoot,
	}
}
