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
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSupplierNotFound       = apperror.NotFound("supplier not found")
	ErrSupplierEmailExists    = apperror.BadRequest("email already in use")
	ErrSupplierPhoneExists    = apperror.BadRequest("phone already in use")
	ErrSupplierIdentityExists = apperror.BadRequest("identity number already in use")
)

type SupplierUsecase interface {
	Create(ctx context.Context, req *dto.CreateSupplierRequest) (*dto.CreateSupplierResponse, error)
	GetAll(ctx context.Context, filter entity.SupplierFilter, params pagination.Params) (*pagination.Page[dto.SupplierResponse], error)
	GetSimple(ctx context.Context, search string, take int) ([]dto.SimpleSupplierResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (*dto.RemovedResponse, error)
}

type supplierUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	supplierRepo repository.SupplierRepository
	auditService service.AuditService
}

func NewSupplierUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	supplierRepo repository.SupplierRepository,
	auditService service.AuditService,
) SupplierUsecase {
	return &supplierUsecase{
		db:           db,
		log:          log,
		supplierRepo: supplierRepo,
		auditService: auditService,
	}
}

func (u *supplierUsecase) Create(ctx context.Context, req *dto.CreateSupplierRequest) (*dto.CreateSupplierResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkConflict(tx, req.Email, req.Phone, req.IdentityNumber, nil); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	supplier := &entity.Supplier{
		Name:           strings.TrimSpace(req.Name),
		Email:          req.Email,
		Phone:          req.Phone,
		IdentityNumber: req.IdentityNumber,
		IsActive:       isActive,
	}

	if err := u.supplierRepo.Create(tx, supplier); err != nil {
		if err := duplicateSupplierError(err); err != nil {
			return nil, err
		}
		u.log.Warnf("Failed to create supplier: %+v", err)
		return nil, err
	}

	// Audit log - create supplier
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionSupplierCreate, "supplier", supplier.ID.String(), converter.SupplierToResponse(supplier)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.CreateSupplierResponse{
		Message:    "Supplier created successfully",
		SupplierID: supplier.ID,
	}, nil
}

func (u *supplierUsecase) GetAll(ctx context.Context, filter entity.SupplierFilter, params pagination.Params) (*pagination.Page[dto.SupplierResponse], error) {
	suppliers, total, err := u.supplierRepo.FindAll(u.db.WithContext(ctx), filter, params)
	if err != nil {
		u.log.Warnf("Failed to find suppliers: %+v", err)
		return nil, err
	}

	page := pagination.NewPage(converter.SuppliersToResponses(suppliers), total, params)
	return &page, nil
}

func (u *supplierUsecase) GetSimple(ctx context.Context, search string, take int) ([]dto.SimpleSupplierResponse, error) {
	suppliers, err := u.supplierRepo.FindSimple(u.db.WithContext(ctx), search, take)
	if err != nil {
		u.log.Warnf("Failed to find simple suppliers: %+v", err)
		return nil, err
	}

	return converter.SuppliersToSimple(suppliers), nil
}

func (u *supplierUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error) {
	supplier, err := u.supplierRepo.FindDetail(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find supplier: %+v", err)
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}

	return converter.SupplierToResponse(supplier), nil
}

func (u *supplierUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	supplier, err := u.supplierRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find supplier: %+v", err)
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}

	// Capture old value for audit
	oldValue := converter.SupplierToResponse(supplier)

	if changedFold(req.Email, supplier.Email) || changed(req.Phone, supplier.Phone) || changed(req.IdentityNumber, supplier.IdentityNumber) {
		email, phone, identity := supplier.Email, supplier.Phone, supplier.IdentityNumber
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.IdentityNumber != nil {
			identity = *req.IdentityNumber
		}
		if err := u.checkConflict(tx, email, phone, identity, &supplier.ID); err != nil {
			return nil, err
		}
	}

	var fields []string
	if req.Name != nil {
		supplier.Name = strings.TrimSpace(*req.Name)
		fields = append(fields, "name")
	}
	if req.Email != nil {
		supplier.Email = *req.Email
		fields = append(fields, "email")
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
		fields = append(fields, "phone")
	}
	if req.IdentityNumber != nil {
		supplier.IdentityNumber = *req.IdentityNumber
		fields = append(fields, "identity_number")
	}
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
		fields = append(fields, "is_active")
	}

	if len(fields) == 0 {
		return oldValue, nil
	}

	if err := u.supplierRepo.Update(tx, supplier, fields...); err != nil {
		if err := duplicateSupplierError(err); err != nil {
			return nil, err
		}
		u.log.Warnf("Failed to update supplier: %+v", err)
		return nil, err
	}

	// Audit log - update supplier
	newValue := converter.SupplierToResponse(supplier)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionSupplierUpdate, "supplier", supplier.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *supplierUsecase) Remove(ctx context.Context, id uuid.UUID) (*dto.RemovedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	supplier, err := u.supplierRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find supplier: %+v", err)
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}
	oldValue := converter.SupplierToResponse(supplier)

	removed, err := u.supplierRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to remove supplier: %+v", err)
		return nil, err
	}
	if !removed {
		return nil, ErrSupplierNotFound
	}

	// Audit log - remove supplier
	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionSupplierDelete, "supplier", id.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RemovedResponse{Message: "Supplier removed successfully", ID: id}, nil
}

func (u *supplierUsecase) checkConflict(tx *gorm.DB, email, phone, identityNumber string, excludeID *uuid.UUID) error {
	conflict, err := u.supplierRepo.FindConflict(tx, email, phone, identityNumber, excludeID)
	if err != nil {
		u.log.Warnf("Failed to check supplier uniqueness: %+v", err)
		return err
	}
	switch {
	case conflict == nil:
		return nil
	case strings.EqualFold(conflict.Email, email):
		return ErrSupplierEmailExists
	case conflict.Phone == phone:
		return ErrSupplierPhoneExists
	default:
		return ErrSupplierIdentityExists
	}
}

func duplicateSupplierError(err error) error {
	switch {
	case isDuplicateKeyError(err, "email"):
		return ErrSupplierEmailExists
	case isDuplicateKeyError(err, "phone"):
		return ErrSupplierPhoneExists
	case isDuplicateKeyError(err, "identity_number"):
		return ErrSupplierIdentityExists
	}
	return nil
}
