package repository

import (
	"orthocare-api/internal/domain/entity"
	domainRepo "orthocare-api/internal/domain/repository"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stockRepository struct{}

func NewStockRepository() domainRepo.StockRepository {
	return &stockRepository{}
}

func (r *stockRepository) Create(db *gorm.DB, stock *entity.Stock) error {
	return db.Create(stock).Error
}

func (r *stockRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Stock, error) {
	return first[entity.Stock](db.Preload("Supplier").Preload("Category"), "id = ?", id)
}

func (r *stockRepository) NameTaken(db *gorm.DB, name string, excludeId *uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Stock{}).
		Scopes(excludeID(excludeId)).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error
	return count > 0, err
}

func (r *stockRepository) FindAll(db *gorm.DB, filter entity.StockFilter, params pagination.Params) ([]entity.Stock, int64, error) {
	return paginate[entity.Stock](db, params, listQuery{
		filters: []scope{
			search(filter.Search,
				"stocks.name ILIKE ?",
				"stocks.supplier_id IN (SELECT id FROM suppliers WHERE name ILIKE ?)",
				"stocks.category_id IN (SELECT id FROM categories WHERE name ILIKE ?)"),
			whereIf(filter.SupplierID != nil, "stocks.supplier_id = ?", derefUUID(filter.SupplierID)),
			whereIf(filter.CategoryID != nil, "stocks.category_id = ?", derefUUID(filter.CategoryID)),
			whereIf(filter.MinQuantity != nil, "stocks.quantity >= ?", derefInt(filter.MinQuantity)),
		},
		preloads: []string{"Supplier", "Category"},
		order:    []string{"stocks.name ASC", "stocks.created_at DESC"},
	})
}

func (r *stockRepository) FindSimple(db *gorm.DB, term string, take int) ([]entity.Stock, error) {
	var stocks []entity.Stock
	err := db.
		Select("id", "name", "quantity").
		Scopes(
			where("quantity > ?", 0),
			search(term, "name ILIKE ?"),
		).
		Order("name ASC").
		Limit(take).
		Find(&stocks).Error
	return stocks, err
}

func (r *stockRepository) Update(db *gorm.DB, stock *entity.Stock, fields ...string) error {
	return update(db, stock, fields)
}

func (r *stockRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error) {
	return softDelete(db, &entity.Stock{}, id, nil)
}

func derefUUID(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
