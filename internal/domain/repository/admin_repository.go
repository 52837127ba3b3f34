package repository

import (
	"orthocare-api/internal/domain/entity"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(db *gorm.DB, admin *entity.Admin) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Admin, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Admin, error)
	// FindConflict returns a non-deleted admin other than excludeID sharing
	// the email or identity number, or nil.
	FindConflict(db *gorm.DB, email, identityNumber string, excludeID *uuid.UUID) (*entity.Admin, error)
	FindAll(db *gorm.DB, filter entity.AdminFilter, params pagination.Params) ([]entity.Admin, int64, error)
	FindSimple(db *gorm.DB, search string, take int) ([]entity.Admin, error)
	Exists(db *gorm.DB, id uuid.UUID) (bool, error)
	Update(db *gorm.DB, admin *entity.Admin, fields ...string) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error)
}
