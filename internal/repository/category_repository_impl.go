package repository

import (
	"orthocare-api/internal/domain/entity"
	domainRepo "orthocare-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type categoryRepository struct{}

func NewCategoryRepository() domainRepo.CategoryRepository {
	return &categoryRepository{}
}

func (r *categoryRepository) FindAll(db *gorm.DB) ([]entity.Category, error) {
	var categories []entity.Category
	err := db.Select("id", "name", "label").Order("label ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	return exists[entity.Category](db, id)
}

// Upsert keys on name; the label is refreshed on conflict.
func (r *categoryRepository) Upsert(db *gorm.DB, category *entity.Category) error {
	return db.Clauses(clause.OnConflict{
		Columns:     []clause.Column{{Name: "name"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "deleted_at IS NULL"}}},
		DoUpdates:   clause.AssignmentColumns([]string{"label", "updated_at"}),
	}).Create(category).Error
}
