package repository

import (
	"orthocare-api/internal/domain/entity"
	domainRepo "orthocare-api/internal/domain/repository"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type adminRepository struct{}

func NewAdminRepository() domainRepo.AdminRepository {
	return &adminRepository{}
}

func (r *adminRepository) Create(db *gorm.DB, admin *entity.Admin) error {
	return db.Create(admin).Error
}

func (r *adminRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Admin, error) {
	return first[entity.Admin](db.Preload("Profile.Permissions"), "id = ?", id)
}

func (r *adminRepository) FindByEmail(db *gorm.DB, email string) (*entity.Admin, error) {
	return first[entity.Admin](db, "LOWER(email) = LOWER(?)", email)
}

func (r *adminRepository) FindConflict(db *gorm.DB, email, identityNumber string, excludeId *uuid.UUID) (*entity.Admin, error) {
	return first[entity.Admin](
		db.Scopes(excludeID(excludeId)),
		"(LOWER(email) = LOWER(?) OR identity_number = ?)", email, identityNumber,
	)
}

func (r *adminRepository) FindAll(db *gorm.DB, filter entity.AdminFilter, params pagination.Params) ([]entity.Admin, int64, error) {
	return paginate[entity.Admin](db, params, listQuery{
		filters: []scope{
			search(filter.Search, "first_name ILIKE ?", "last_name ILIKE ?", "email ILIKE ?"),
			whereIf(filter.ActiveOnly, "is_active = ?", true),
		},
		preloads: []string{"Profile"},
		order:    []string{"last_name ASC", "first_name ASC"},
	})
}

func (r *adminRepository) FindSimple(db *gorm.DB, term string, take int) ([]entity.Admin, error) {
	var admins []entity.Admin
	err := db.
		Select("id", "first_name", "last_name", "phone").
		Scopes(
			where("is_active = ?", true),
			search(term, "first_name ILIKE ?", "last_name ILIKE ?"),
		).
		Order("first_name ASC").Order("last_name ASC").
		Limit(take).
		Find(&admins).Error
	return admins, err
}

func (r *adminRepository) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	return exists[entity.Admin](db, id)
}

func (r *adminRepository) Update(db *gorm.DB, admin *entity.Admin, fields ...string) error {
	return update(db, admin, fields)
}

func (r *adminRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error) {
	return softDelete(db, &entity.Admin{}, id, map[string]interface{}{"is_active": false})
}
