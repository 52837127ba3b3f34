package repository

import (
	"orthocare-api/internal/domain/entity"
	domainRepo "orthocare-api/internal/domain/repository"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Profile Repository

type profileRepository struct{}

func NewProfileRepository() domainRepo.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(db *gorm.DB, profile *entity.Profile) error {
	return db.Omit("Permissions.*").Create(profile).Error
}

func (r *profileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Profile, error) {
	return first[entity.Profile](db.Preload("Permissions"), "id = ?", id)
}

func (r *profileRepository) FindByName(db *gorm.DB, name string) (*entity.Profile, error) {
	return first[entity.Profile](db, "name = ?", name)
}

func (r *profileRepository) FindAll(db *gorm.DB, filter entity.ProfileFilter, params pagination.Params) ([]entity.Profile, int64, error) {
	return paginate[entity.Profile](db, params, listQuery{
		filters: []scope{
			search(filter.Search, "name ILIKE ?", "label ILIKE ?", "description ILIKE ?"),
		},
		preloads: []string{"Permissions"},
		order:    []string{"name ASC", "created_at DESC"},
	})
}

func (r *profileRepository) FindSimple(db *gorm.DB, term string, includePermissions bool) ([]entity.Profile, error) {
	var profiles []entity.Profile
	q := db.Scopes(search(term, "name ILIKE ?", "label ILIKE ?")).Order("name ASC")
	if includePermissions {
		q = q.Preload("Permissions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("name ASC")
		})
	}
	err := q.Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) ReplacePermissions(db *gorm.DB, profile *entity.Profile, permissions []entity.Permission) error {
	return db.Model(profile).Association("Permissions").Replace(permissions)
}

// Permission Repository

type permissionRepository struct{}

func NewPermissionRepository() domainRepo.PermissionRepository {
	return &permissionRepository{}
}

func (r *permissionRepository) FindAll(db *gorm.DB) ([]entity.Permission, error) {
	var permissions []entity.Permission
	err := db.Order("name ASC").Find(&permissions).Error
	return permissions, err
}

func (r *permissionRepository) FindByNames(db *gorm.DB, names []string) ([]entity.Permission, error) {
	var permissions []entity.Permission
	err := db.Where("name IN ?", names).Find(&permissions).Error
	return permissions, err
}

func (r *permissionRepository) Upsert(db *gorm.DB, permission *entity.Permission) error {
	return db.Clauses(clause.OnConflict{
		Columns:     []clause.Column{{Name: "name"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "deleted_at IS NULL"}}},
		DoUpdates:   clause.AssignmentColumns([]string{"label", "updated_at"}),
	}).Create(permission).Error
}
