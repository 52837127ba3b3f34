package converter

import (
	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"
)

func PermissionsToResponses(permissions []entity.Permission) []dto.PermissionResponse {
	responses := make([]dto.PermissionResponse, len(permissions))
	for i, p := range permissions {
		responses[i] = dto.PermissionResponse{
			ID:    p.ID,
			Name:  p.Name,
			Label: p.Label,
		}
	}
	return responses
}

func ProfileToResponse(profile *entity.Profile) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}

	resp := &dto.ProfileResponse{
		ID:          profile.ID,
		Name:        profile.Name,
		Label:       profile.Label,
		Description: profile.Description,
		CreatedAt:   profile.CreatedAt,
	}
	if len(profile.Permissions) > 0 {
		resp.Permissions = PermissionsToResponses(profile.Permissions)
	}
	return resp
}

func ProfilesToResponses(profiles []entity.Profile) []dto.ProfileResponse {
	responses := make([]dto.ProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = *ProfileToResponse(&profiles[i])
	}
	return responses
}
