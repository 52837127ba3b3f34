package repository

import (
	"orthocare-api/internal/domain/entity"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockRepository interface {
	Create(db *gorm.DB, stock *entity.Stock) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Stock, error)
	// NameTaken matches names case-insensitively among non-deleted stocks.
	NameTaken(db *gorm.DB, name string, excludeID *uuid.UUID) (bool, error)
	FindAll(db *gorm.DB, filter entity.StockFilter, params pagination.Params) ([]entity.Stock, int64, error)
	FindSimple(db *gorm.DB, search string, take int) ([]entity.Stock, error)
	Update(db *gorm.DB, stock *entity.Stock, fields ...string) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error)
}

type CategoryRepository interface {
	FindAll(db *gorm.DB) ([]entity.Category, error)
	Exists(db *gorm.DB, id uuid.UUID) (bool, error)
	Upsert(db *gorm.DB, category *entity.Category) error
}
