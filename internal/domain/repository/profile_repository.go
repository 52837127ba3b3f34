package repository

import (
	"orthocare-api/internal/domain/entity"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(db *gorm.DB, profile *entity.Profile) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Profile, error)
	FindByName(db *gorm.DB, name string) (*entity.Profile, error)
	FindAll(db *gorm.DB, filter entity.ProfileFilter, params pagination.Params) ([]entity.Profile, int64, error)
	FindSimple(db *gorm.DB, search string, includePermissions bool) ([]entity.Profile, error)
	ReplacePermissions(db *gorm.DB, profile *entity.Profile, permissions []entity.Permission) error
}

type PermissionRepository interface {
	FindAll(db *gorm.DB) ([]entity.Permission, error)
	FindByNames(db *gorm.DB, names []string) ([]entity.Permission, error)
	Upsert(db *gorm.DB, permission *entity.Permission) error
}
