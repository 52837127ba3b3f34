package repository

import (
	"orthocare-api/internal/domain/entity"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	// FindDetail loads the patient with its most recent schedulings.
	FindDetail(db *gorm.DB, id uuid.UUID, recentSchedulings int) (*entity.Patient, error)
	FindConflict(db *gorm.DB, email, identityNumber, phone string, excludeID *uuid.UUID) (*entity.Patient, error)
	FindAll(db *gorm.DB, filter entity.PatientFilter, params pagination.Params) ([]entity.Patient, int64, error)
	FindSimple(db *gorm.DB, search string, take int) ([]entity.Patient, error)
	Exists(db *gorm.DB, id uuid.UUID) (bool, error)
	Update(db *gorm.DB, patient *entity.Patient, fields ...string) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error)
}
