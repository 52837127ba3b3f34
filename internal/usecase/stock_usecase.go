package usecase

import (
	"context"
	"strings"

	"orthocare-api/internal/converter"
	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"
	"orthocare-api/internal/domain/repository"
	"orthocare-api/internal/service"
	"orthocare-api/pkg/apperror"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrStockNotFound         = apperror.NotFound("stock not found")
	ErrStockNameExists       = apperror.BadRequest("stock name already in use")
	ErrStockSupplierNotFound = apperror.BadRequest("supplier not found")
	ErrStockCategoryNotFound = apperror.BadRequest("category not found")
)

type StockUsecase interface {
	Create(ctx context.Context, req *dto.CreateStockRequest) (*dto.CreateStockResponse, error)
	GetAll(ctx context.Context, filter entity.StockFilter, params pagination.Params) (*pagination.Page[dto.StockResponse], error)
	GetSimple(ctx context.Context, search string, take int) ([]dto.SimpleStockResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.StockResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateStockRequest) (*dto.StockResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (*dto.RemovedResponse, error)
	GetCategories(ctx context.Context) ([]dto.CategoryResponse, error)
}

type stockUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	stockRepo    repository.StockRepository
	supplierRepo repository.SupplierRepository
	categoryRepo repository.CategoryRepository
	auditService service.AuditService
}

func NewStockUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	stockRepo repository.StockRepository,
	supplierRepo repository.SupplierRepository,
	categoryRepo repository.CategoryRepository,
	auditService service.AuditService,
) StockUsecase {
	return &stockUsecase{
		db:           db,
		log:          log,
		stockRepo:    stockRepo,
		supplierRepo: supplierRepo,
		categoryRepo: categoryRepo,
		auditService: auditService,
	}
}

func (u *stockUsecase) Create(ctx context.Context, req *dto.CreateStockRequest) (*dto.CreateStockResponse, error) {
	supplierID, err := parseID(req.SupplierID, "supplierId")
	if err != nil {
		return nil, err
	}
	categoryID, err := parseID(req.CategoryID, "categoryId")
	if err != nil {
		return nil, err
	}

	if err := u.checkReferences(ctx, &supplierID, &categoryID); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	name := strings.TrimSpace(req.Name)
	taken, err := u.stockRepo.NameTaken(tx, name, nil)
	if err != nil {
		u.log.Warnf("Failed to check stock name: %+v", err)
		return nil, err
	}
	if taken {
		return nil, ErrStockNameExists
	}

	unitPrice := decimal.Zero
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}

	stock := &entity.Stock{
		Name:       name,
		Quantity:   *req.Quantity,
		UnitPrice:  unitPrice,
		SupplierID: supplierID,
		CategoryID: categoryID,
	}

	if err := u.stockRepo.Create(tx, stock); err != nil {
		if err := stockWriteError(err); err != nil {
			return nil, err
		}
		u.log.Warnf("Failed to create stock: %+v", err)
		return nil, err
	}

	// Audit log - create stock
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionStockCreate, "stock", stock.ID.String(), converter.StockToResponse(stock)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.CreateStockResponse{
		Message: "Stock created successfully",
		StockID: stock.ID,
	}, nil
}

func (u *stockUsecase) GetAll(ctx context.Context, filter entity.StockFilter, params pagination.Params) (*pagination.Page[dto.StockResponse], error) {
	stocks, total, err := u.stockRepo.FindAll(u.db.WithContext(ctx), filter, params)
	if err != nil {
		u.log.Warnf("Failed to find stocks: %+v", err)
		return nil, err
	}

	page := pagination.NewPage(converter.StocksToResponses(stocks), total, params)
	return &page, nil
}

func (u *stockUsecase) GetSimple(ctx context.Context, search string, take int) ([]dto.SimpleStockResponse, error) {
	stocks, err := u.stockRepo.FindSimple(u.db.WithContext(ctx), search, take)
	if err != nil {
		u.log.Warnf("Failed to find simple stocks: %+v", err)
		return nil, err
	}

	return converter.StocksToSimple(stocks), nil
}

func (u *stockUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.StockResponse, error) {
	stock, err := u.stockRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find stock: %+v", err)
		return nil, err
	}
	if stock == nil {
		return nil, ErrStockNotFound
	}

	return converter.StockToResponse(stock), nil
}

func (u *stockUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateStockRequest) (*dto.StockResponse, error) {
	var supplierID, categoryID *uuid.UUID
	if req.SupplierID != nil {
		parsed, err := parseID(*req.SupplierID, "supplierId")
		if err != nil {
			return nil, err
		}
		supplierID = &parsed
	}
	if req.CategoryID != nil {
		parsed, err := parseID(*req.CategoryID, "categoryId")
		if err != nil {
			return nil, err
		}
		categoryID = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	stock, err := u.stockRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find stock: %+v", err)
		return nil, err
	}
	if stock == nil {
		return nil, ErrStockNotFound
	}

	// Capture old value for audit
	oldValue := converter.StockToResponse(stock)

	// Only re-validate references that actually move.
	if supplierID != nil && *supplierID == stock.SupplierID {
		supplierID = nil
	}
	if categoryID != nil && *categoryID == stock.CategoryID {
		categoryID = nil
	}
	if err := u.checkReferences(ctx, supplierID, categoryID); err != nil {
		return nil, err
	}

	if changedFold(req.Name, stock.Name) {
		taken, err := u.stockRepo.NameTaken(tx, strings.TrimSpace(*req.Name), &stock.ID)
		if err != nil {
			u.log.Warnf("Failed to check stock name: %+v", err)
			return nil, err
		}
		if taken {
			return nil, ErrStockNameExists
		}
	}

	var fields []string
	if req.Name != nil {
		stock.Name = strings.TrimSpace(*req.Name)
		fields = append(fields, "name")
	}
	if req.Quantity != nil {
		stock.Quantity = *req.Quantity
		fields = append(fields, "quantity")
	}
	if req.UnitPrice != nil {
		stock.UnitPrice = *req.UnitPrice
		fields = append(fields, "unit_price")
	}
	if supplierID != nil {
		stock.SupplierID = *supplierID
		stock.Supplier = nil
		fields = append(fields, "supplier_id")
	}
	if categoryID != nil {
		stock.CategoryID = *categoryID
		stock.Category = nil
		fields = append(fields, "category_id")
	}

	if len(fields) == 0 {
		return oldValue, nil
	}

	if err := u.stockRepo.Update(tx, stock, fields...); err != nil {
		if err := stockWriteError(err); err != nil {
			return nil, err
		}
		u.log.Warnf("Failed to update stock: %+v", err)
		return nil, err
	}

	// Audit log - update stock
	newValue := converter.StockToResponse(stock)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionStockUpdate, "stock", stock.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *stockUsecase) Remove(ctx context.Context, id uuid.UUID) (*dto.RemovedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	stock, err := u.stockRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find stock: %+v", err)
		return nil, err
	}
	if stock == nil {
		return nil, ErrStockNotFound
	}
	oldValue := converter.StockToResponse(stock)

	removed, err := u.stockRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to remove stock: %+v", err)
		return nil, err
	}
	if !removed {
		return nil, ErrStockNotFound
	}

	// Audit log - remove stock
	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionStockDelete, "stock", id.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RemovedResponse{Message: "Stock removed successfully", ID: id}, nil
}

func (u *stockUsecase) GetCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := u.categoryRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find categories: %+v", err)
		return nil, err
	}

	return converter.CategoriesToResponses(categories), nil
}

// checkReferences verifies the supplier and category concurrently on
// separate pool connections. Nil ids are skipped.
func (u *stockUsecase) checkReferences(ctx context.Context, supplierID, categoryID *uuid.UUID) error {
	var supplierOK, categoryOK = true, true

	g, gctx := errgroup.WithContext(ctx)
	if supplierID != nil {
		g.Go(func() error {
			ok, err := u.supplierRepo.Exists(u.db.WithContext(gctx), *supplierID)
			supplierOK = ok
			return err
		})
	}
	if categoryID != nil {
		g.Go(func() error {
			ok, err := u.categoryRepo.Exists(u.db.WithContext(gctx), *categoryID)
			categoryOK = ok
			return err
		})
	}
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to check stock references: %+v", err)
		return err
	}

	if !supplierOK {
		return ErrStockSupplierNotFound
	}
	if !categoryOK {
		return ErrStockCategoryNotFound
	}
	return nil
}

func stockWriteError(err error) error {
	switch {
	case isDuplicateKeyError(err, "name"):
		return ErrStockNameExists
	case isForeignKeyError(err, "supplier"):
		return ErrStockSupplierNotFound
	case isForeignKeyError(err, "category"):
		return ErrStockCategoryNotFound
	}
	return nil
}
