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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound       = apperror.NotFound("doctor not found")
	ErrDoctorEmailExists    = apperror.BadRequest("email already in use")
	ErrDoctorIdentityExists = apperror.BadRequest("identity number already in use")
	ErrDoctorProfileMissing = apperror.BadRequest("profile not found")
	ErrDoctorRootForbidden  = apperror.Forbidden("only a full-access admin can create root admins")
)

// DoctorUsecase manages admin accounts. Every admin can be booked as a doctor.
type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.CreateDoctorResponse, error)
	GetAll(ctx context.Context, filter entity.AdminFilter, params pagination.Params) (*pagination.Page[dto.DoctorResponse], error)
	GetSimple(ctx context.Context, search string, take int) ([]dto.SimplePersonResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (*dto.RemovedResponse, error)
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	adminRepo    repository.AdminRepository
	profileRepo  repository.ProfileRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	adminRepo repository.AdminRepository,
	profileRepo repository.ProfileRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		adminRepo:    adminRepo,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.CreateDoctorResponse, error) {
	profileID, err := parseID(req.ProfileID, "profileId")
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.IsRoot {
		if err := u.requireFullAccess(ctx, tx); err != nil {
			return nil, err
		}
	}

	if err := u.checkConflict(tx, req.Email, req.IdentityNumber, nil); err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.FindByID(tx, profileID)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorProfileMissing
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	admin := &entity.Admin{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          req.Email,
		PasswordHash:   string(hashedPassword),
		IdentityNumber: req.IdentityNumber,
		Phone:          req.Phone,
		IsActive:       true,
		IsRoot:         req.IsRoot,
		ProfileID:      profile.ID,
	}

	if err := u.adminRepo.Create(tx, admin); err != nil {
		if err := duplicateAdminError(err); err != nil {
			return nil, err
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	// Audit log - create doctor
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionDoctorCreate, "admin", admin.ID.String(), converter.AdminToResponse(admin)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.CreateDoctorResponse{
		Message:  "Doctor created successfully",
		DoctorID: admin.ID,
	}, nil
}

// requireFullAccess admits root admins and active admins whose profile grants
// full access.
func (u *doctorUsecase) requireFullAccess(ctx context.Context, tx *gorm.DB) error {
	id := actorID(ctx)
	if id == nil {
		return ErrDoctorRootForbidden
	}

	actor, err := u.adminRepo.FindByID(tx, *id)
	if err != nil {
		u.log.Warnf("Failed to find acting admin: %+v", err)
		return err
	}
	if actor == nil || !actor.IsActive {
		return ErrDoctorRootForbidden
	}
	if actor.IsRoot {
		return nil
	}
	if actor.Profile != nil {
		for _, p := range actor.Profile.Permissions {
			if p.Name == entity.PermissionFullAccess {
				return nil
			}
		}
	}
	return ErrDoctorRootForbidden
}

func (u *doctorUsecase) GetAll(ctx context.Context, filter entity.AdminFilter, params pagination.Params) (*pagination.Page[dto.DoctorResponse], error) {
	admins, total, err := u.adminRepo.FindAll(u.db.WithContext(ctx), filter, params)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	page := pagination.NewPage(converter.AdminsToResponses(admins), total, params)
	return &page, nil
}

func (u *doctorUsecase) GetSimple(ctx context.Context, search string, take int) ([]dto.SimplePersonResponse, error) {
	admins, err := u.adminRepo.FindSimple(u.db.WithContext(ctx), search, take)
	if err != nil {
		u.log.Warnf("Failed to find simple doctors: %+v", err)
		return nil, err
	}

	return converter.AdminsToSimple(admins), nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	admin, err := u.adminRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.AdminToResponse(admin), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admin, err := u.adminRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrDoctorNotFound
	}

	// Capture old value for audit
	oldValue := converter.AdminToResponse(admin)

	if changedFold(req.Email, admin.Email) || changed(req.IdentityNumber, admin.IdentityNumber) {
		email, identity := admin.Email, admin.IdentityNumber
		if req.Email != nil {
			email = *req.Email
		}
		if req.IdentityNumber != nil {
			identity = *req.IdentityNumber
		}
		if err := u.checkConflict(tx, email, identity, &admin.ID); err != nil {
			return nil, err
		}
	}

	var fields []string
	if req.FirstName != nil {
		admin.FirstName = strings.TrimSpace(*req.FirstName)
		fields = append(fields, "first_name")
	}
	if req.LastName != nil {
		admin.LastName = strings.TrimSpace(*req.LastName)
		fields = append(fields, "last_name")
	}
	if req.Email != nil {
		admin.Email = *req.Email
		fields = append(fields, "email")
	}
	if req.IdentityNumber != nil {
		admin.IdentityNumber = *req.IdentityNumber
		fields = append(fields, "identity_number")
	}
	if req.Phone != nil {
		admin.Phone = *req.Phone
		fields = append(fields, "phone")
	}
	if req.IsActive != nil {
		admin.IsActive = *req.IsActive
		fields = append(fields, "is_active")
	}
	if req.ProfileID != nil {
		profileID, err := parseID(*req.ProfileID, "profileId")
		if err != nil {
			return nil, err
		}
		if profileID != admin.ProfileID {
			profile, err := u.profileRepo.FindByID(tx, profileID)
			if err != nil {
				u.log.Warnf("Failed to find profile: %+v", err)
				return nil, err
			}
			if profile == nil {
				return nil, ErrDoctorProfileMissing
			}
			admin.ProfileID = profile.ID
			admin.Profile = profile
			fields = append(fields, "profile_id")
		}
	}

	if len(fields) == 0 {
		return oldValue, nil
	}

	if err := u.adminRepo.Update(tx, admin, fields...); err != nil {
		if err := duplicateAdminError(err); err != nil {
			return nil, err
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	// Audit log - update doctor
	newValue := converter.AdminToResponse(admin)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionDoctorUpdate, "admin", admin.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *doctorUsecase) Remove(ctx context.Context, id uuid.UUID) (*dto.RemovedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admin, err := u.adminRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrDoctorNotFound
	}
	oldValue := converter.AdminToResponse(admin)

	removed, err := u.adminRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to remove doctor: %+v", err)
		return nil, err
	}
	if !removed {
		return nil, ErrDoctorNotFound
	}

	// Audit log - remove doctor
	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionDoctorDelete, "admin", id.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RemovedResponse{Message: "Doctor removed successfully", ID: id}, nil
}

func (u *doctorUsecase) checkConflict(tx *gorm.DB, email, identityNumber string, excludeID *uuid.UUID) error {
	conflict, err := u.adminRepo.FindConflict(tx, email, identityNumber, excludeID)
	if err != nil {
		u.log.Warnf("Failed to check doctor uniqueness: %+v", err)
		return err
	}
	if conflict == nil {
		return nil
	}
	if strings.EqualFold(conflict.Email, email) {
		return ErrDoctorEmailExists
	}
	return ErrDoctorIdentityExists
}

// duplicateAdminError maps a unique violation that slipped past the
// conflict check; nil when err is something else.
func duplicateAdminError(err error) error {
	switch {
	case isDuplicateKeyError(err, "email"):
		return ErrDoctorEmailExists
	case isDuplicateKeyError(err, "identity_number"):
		return ErrDoctorIdentityExists
	case isForeignKeyError(err, "profile"):
		return ErrDoctorProfileMissing
	}
	return nil
}
