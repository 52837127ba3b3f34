package repository

import (
	"orthocare-api/internal/domain/entity"
	domainRepo "orthocare-api/internal/domain/repository"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	return first[entity.Patient](db, "id = ?", id)
}

func (r *patientRepository) FindDetail(db *gorm.DB, id uuid.UUID, recentSchedulings int) (*entity.Patient, error) {
	return first[entity.Patient](
		db.Preload("Schedulings", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC").Limit(recentSchedulings)
		}),
		"id = ?", id,
	)
}

func (r *patientRepository) FindConflict(db *gorm.DB, email, identityNumber, phone string, excludeId *uuid.UUID) (*entity.Patient, error) {
	return first[entity.Patient](
		db.Scopes(excludeID(excludeId)),
		"(LOWER(email) = LOWER(?) OR identity_number = ? OR phone = ?)", email, identityNumber, phone,
	)
}

func (r *patientRepository) FindAll(db *gorm.DB, filter entity.PatientFilter, params pagination.Params) ([]entity.Patient, int64, error) {
	return paginate[entity.Patient](db, params, listQuery{
		filters: []scope{
			search(filter.Search,
				"first_name ILIKE ?", "last_name ILIKE ?", "email ILIKE ?",
				"phone ILIKE ?", "identity_number ILIKE ?"),
			whereIf(filter.ActiveOnly, "is_active = ?", true),
		},
		order: []string{"last_name ASC", "first_name ASC"},
	})
}

func (r *patientRepository) FindSimple(db *gorm.DB, term string, take int) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.
		Select("id", "first_name", "last_name", "phone").
		Scopes(
			where("is_active = ?", true),
			search(term, "first_name ILIKE ?", "last_name ILIKE ?"),
		).
		Order("first_name ASC").Order("last_name ASC").
		Limit(take).
		Find(&patients).Error
	return patients, err
}

func (r *patientRepository) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	return exists[entity.Patient](db, id)
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient, fields ...string) error {
	return update(db, patient, fields)
}

func (r *patientRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error) {
	return softDelete(db, &entity.Patient{}, id, map[string]interface{}{"is_active": false})
}
