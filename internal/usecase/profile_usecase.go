package usecase

import (
	"context"

	"orthocare-api/internal/converter"
	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"
	"orthocare-api/internal/domain/repository"
	"orthocare-api/pkg/apperror"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = apperror.NotFound("profile not found")
)

// ProfileUsecase is read-only; profiles and permissions are seeded.
type ProfileUsecase interface {
	GetAll(ctx context.Context, filter entity.ProfileFilter, params pagination.Params) (*pagination.Page[dto.ProfileResponse], error)
	GetSimple(ctx context.Context, search string, includePermissions bool) ([]dto.ProfileResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error)
	GetPermissions(ctx context.Context) ([]dto.PermissionResponse, error)
}

type profileUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	profileRepo    repository.ProfileRepository
	permissionRepo repository.PermissionRepository
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	permissionRepo repository.PermissionRepository,
) ProfileUsecase {
	return &profileUsecase{
		db:             db,
		log:            log,
		profileRepo:    profileRepo,
		permissionRepo: permissionRepo,
	}
}

func (u *profileUsecase) GetAll(ctx context.Context, filter entity.ProfileFilter, params pagination.Params) (*pagination.Page[dto.ProfileResponse], error) {
	profiles, total, err := u.profileRepo.FindAll(u.db.WithContext(ctx), filter, params)
	if err != nil {
		u.log.Warnf("Failed to find profiles: %+v", err)
		return nil, err
	}

	page := pagination.NewPage(converter.ProfilesToResponses(profiles), total, params)
	return &page, nil
}

func (u *profileUsecase) GetSimple(ctx context.Context, search string, includePermissions bool) ([]dto.ProfileResponse, error) {
	profiles, err := u.profileRepo.FindSimple(u.db.WithContext(ctx), search, includePermissions)
	if err != nil {
		u.log.Warnf("Failed to find simple profiles: %+v", err)
		return nil, err
	}

	return converter.ProfilesToResponses(profiles), nil
}

func (u *profileUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := u.profileRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return converter.ProfileToResponse(profile), nil
}

func (u *profileUsecase) GetPermissions(ctx context.Context) ([]dto.PermissionResponse, error) {
	permissions, err := u.permissionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find permissions: %+v", err)
		return nil, err
	}

	return converter.PermissionsToResponses(permissions), nil
}
