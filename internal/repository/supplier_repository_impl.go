package repository

import (
	"orthocare-api/internal/domain/entity"
	domainRepo "orthocare-api/internal/domain/repository"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type supplierRepository struct{}

func NewSupplierRepository() domainRepo.SupplierRepository {
	return &supplierRepository{}
}

func (r *supplierRepository) Create(db *gorm.DB, supplier *entity.Supplier) error {
	return db.Create(supplier).Error
}

func (r *supplierRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Supplier, error) {
	return first[entity.Supplier](db, "id = ?", id)
}

func (r *supplierRepository) FindDetail(db *gorm.DB, id uuid.UUID) (*entity.Supplier, error) {
	return first[entity.Supplier](
		db.Preload("Stocks", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("name ASC")
		}),
		"id = ?", id,
	)
}

func (r *supplierRepository) FindConflict(db *gorm.DB, email, phone, identityNumber string, excludeId *uuid.UUID) (*entity.Supplier, error) {
	return first[entity.Supplier](
		db.Scopes(excludeID(excludeId)),
		"(LOWER(email) = LOWER(?) OR phone = ? OR identity_number = ?)", email, phone, identityNumber,
	)
}

func (r *supplierRepository) FindAll(db *gorm.DB, filter entity.SupplierFilter, params pagination.Params) ([]entity.Supplier, int64, error) {
	return paginate[entity.Supplier](db, params, listQuery{
		filters: []scope{
			search(filter.Search, "name ILIKE ?", "email ILIKE ?", "phone ILIKE ?", "identity_number ILIKE ?"),
			whereIf(filter.ActiveOnly, "is_active = ?", true),
		},
		order: []string{"name ASC"},
	})
}

func (r *supplierRepository) FindSimple(db *gorm.DB, term string, take int) ([]entity.Supplier, error) {
	var suppliers []entity.Supplier
	err := db.
		Select("id", "name").
		Scopes(
			where("is_active = ?", true),
			search(term, "name ILIKE ?"),
		).
		Order("name ASC").
		Limit(take).
		Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepository) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	return exists[entity.Supplier](db, id)
}

func (r *supplierRepository) Update(db *gorm.DB, supplier *entity.Supplier, fields ...string) error {
	return update(db, supplier, fields)
}

func (r *supplierRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error) {
	return softDelete(db, &entity.Supplier{}, id, map[string]interface{}{"is_active": false})
}
