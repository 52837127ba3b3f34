package usecase

import (
	"context"
	"strings"
	"time"

	"orthocare-api/internal/converter"
	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"
	"orthocare-api/internal/domain/repository"
	"orthocare-api/internal/service"
	"orthocare-api/pkg/apperror"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const recentSchedulings = 5

var (
	ErrPatientNotFound       = apperror.NotFound("patient not found")
	ErrPatientEmailExists    = apperror.BadRequest("email already in use")
	ErrPatientIdentityExists = apperror.BadRequest("identity number already in use")
	ErrPatientPhoneExists    = apperror.BadRequest("phone already in use")
	ErrInvalidBirthDate      = apperror.BadRequest("birthDate must use the YYYY-MM-DD format")
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.CreatePatientResponse, error)
	GetAll(ctx context.Context, filter entity.PatientFilter, params pagination.Params) (*pagination.Page[dto.PatientResponse], error)
	GetSimple(ctx context.Context, search string, take int) ([]dto.SimplePersonResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (*dto.RemovedResponse, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.CreatePatientResponse, error) {
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkConflict(tx, req.Email, req.IdentityNumber, req.Phone, nil); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	patient := &entity.Patient{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		BirthDate:      birthDate,
		Email:          req.Email,
		IdentityNumber: req.IdentityNumber,
		Phone:          req.Phone,
		IsActive:       isActive,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if err := duplicatePatientError(err); err != nil {
			return nil, err
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	// Audit log - create patient
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionPatientCreate, "patient", patient.ID.String(), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.CreatePatientResponse{
		Message:   "Patient created successfully",
		PatientID: patient.ID,
	}, nil
}

func (u *patientUsecase) GetAll(ctx context.Context, filter entity.PatientFilter, params pagination.Params) (*pagination.Page[dto.PatientResponse], error) {
	patients, total, err := u.patientRepo.FindAll(u.db.WithContext(ctx), filter, params)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	page := pagination.NewPage(converter.PatientsToResponses(patients), total, params)
	return &page, nil
}

func (u *patientUsecase) GetSimple(ctx context.Context, search string, take int) ([]dto.SimplePersonResponse, error) {
	patients, err := u.patientRepo.FindSimple(u.db.WithContext(ctx), search, take)
	if err != nil {
		u.log.Warnf("Failed to find simple patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToSimple(patients), nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindDetail(u.db.WithContext(ctx), id, recentSchedulings)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Capture old value for audit
	oldValue := converter.PatientToResponse(patient)

	if changedFold(req.Email, patient.Email) || changed(req.IdentityNumber, patient.IdentityNumber) || changed(req.Phone, patient.Phone) {
		email, identity, phone := patient.Email, patient.IdentityNumber, patient.Phone
		if req.Email != nil {
			email = *req.Email
		}
		if req.IdentityNumber != nil {
			identity = *req.IdentityNumber
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if err := u.checkConflict(tx, email, identity, phone, &patient.ID); err != nil {
			return nil, err
		}
	}

	var fields []string
	if req.FirstName != nil {
		patient.FirstName = strings.TrimSpace(*req.FirstName)
		fields = append(fields, "first_name")
	}
	if req.LastName != nil {
		patient.LastName = strings.TrimSpace(*req.LastName)
		fields = append(fields, "last_name")
	}
	if req.BirthDate != nil {
		birthDate, err := parseBirthDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		patient.BirthDate = birthDate
		fields = append(fields, "birth_date")
	}
	if req.Email != nil {
		patient.Email = *req.Email
		fields = append(fields, "email")
	}
	if req.IdentityNumber != nil {
		patient.IdentityNumber = *req.IdentityNumber
		fields = append(fields, "identity_number")
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
		fields = append(fields, "phone")
	}
	if req.IsActive != nil {
		patient.IsActive = *req.IsActive
		fields = append(fields, "is_active")
	}

	if len(fields) == 0 {
		return oldValue, nil
	}

	if err := u.patientRepo.Update(tx, patient, fields...); err != nil {
		if err := duplicatePatientError(err); err != nil {
			return nil, err
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	// Audit log - update patient
	newValue := converter.PatientToResponse(patient)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionPatientUpdate, "patient", patient.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *patientUsecase) Remove(ctx context.Context, id uuid.UUID) (*dto.RemovedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	oldValue := converter.PatientToResponse(patient)

	removed, err := u.patientRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to remove patient: %+v", err)
		return nil, err
	}
	if !removed {
		return nil, ErrPatientNotFound
	}

	// Audit log - remove patient
	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionPatientDelete, "patient", id.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RemovedResponse{Message: "Patient removed successfully", ID: id}, nil
}

func (u *patientUsecase) checkConflict(tx *gorm.DB, email, identityNumber, phone string, excludeID *uuid.UUID) error {
	conflict, err := u.patientRepo.FindConflict(tx, email, identityNumber, phone, excludeID)
	if err != nil {
		u.log.Warnf("Failed to check patient uniqueness: %+v", err)
		return err
	}
	switch {
	case conflict == nil:
		return nil
	case strings.EqualFold(conflict.Email, email):
		return ErrPatientEmailExists
	case conflict.IdentityNumber == identityNumber:
		return ErrPatientIdentityExists
	default:
		return ErrPatientPhoneExists
	}
}

func duplicatePatientError(err error) error {
	switch {
	case isDuplicateKeyError(err, "email"):
		return ErrPatientEmailExists
	case isDuplicateKeyError(err, "identity_number"):
		return ErrPatientIdentityExists
	case isDuplicateKeyError(err, "phone"):
		return ErrPatientPhoneExists
	}
	return nil
}

func parseBirthDate(raw string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return datatypes.Date{}, ErrInvalidBirthDate
	}
	return datatypes.Date(t), nil
}
