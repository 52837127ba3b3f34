package repository

import (
	"orthocare-api/internal/domain/entity"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(db *gorm.DB, supplier *entity.Supplier) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Supplier, error)
	FindDetail(db *gorm.DB, id uuid.UUID) (*entity.Supplier, error)
	FindConflict(db *gorm.DB, email, phone, identityNumber string, excludeID *uuid.UUID) (*entity.Supplier, error)
	FindAll(db *gorm.DB, filter entity.SupplierFilter, params pagination.Params) ([]entity.Supplier, int64, error)
	FindSimple(db *gorm.DB, search string, take int) ([]entity.Supplier, error)
	Exists(db *gorm.DB, id uuid.UUID) (bool, error)
	Update(db *gorm.DB, supplier *entity.Supplier, fields ...string) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error)
}
