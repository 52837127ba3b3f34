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
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrSchedulingNotFound        = apperror.NotFound("scheduling not found")
	ErrSchedulingPatientNotFound = apperror.BadRequest("patient not found")
	ErrSchedulingDoctorNotFound  = apperror.BadRequest("doctor not found")
)

type SchedulingUsecase interface {
	Create(ctx context.Context, req *dto.CreateSchedulingRequest) (*dto.CreateSchedulingResponse, error)
	GetAll(ctx context.Context, filter entity.SchedulingFilter, params pagination.Params) (*pagination.Page[dto.SchedulingResponse], error)
	GetSimple(ctx context.Context, filter entity.SchedulingFilter, take int) ([]dto.SimpleSchedulingResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SchedulingResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSchedulingRequest) (*dto.SchedulingResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (*dto.RemovedResponse, error)
}

type schedulingUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	schedulingRepo repository.SchedulingRepository
	patientRepo    repository.PatientRepository
	adminRepo      repository.AdminRepository
	auditService   service.AuditService
}

func NewSchedulingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	schedulingRepo repository.SchedulingRepository,
	patientRepo repository.PatientRepository,
	adminRepo repository.AdminRepository,
	auditService service.AuditService,
) SchedulingUsecase {
	return &schedulingUsecase{
		db:             db,
		log:            log,
		schedulingRepo: schedulingRepo,
		patientRepo:    patientRepo,
		adminRepo:      adminRepo,
		auditService:   auditService,
	}
}

func (u *schedulingUsecase) Create(ctx context.Context, req *dto.CreateSchedulingRequest) (*dto.CreateSchedulingResponse, error) {
	patientID, err := parseID(req.PatientID, "patientId")
	if err != nil {
		return nil, err
	}
	doctorID, err := parseID(req.DoctorID, "doctorId")
	if err != nil {
		return nil, err
	}

	if err := u.checkParticipants(ctx, &patientID, &doctorID); err != nil {
		return nil, err
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = entity.SchedulingStatusScheduled
	}

	scheduling := &entity.Scheduling{
		Hours:       req.Hours,
		PatientID:   patientID,
		DoctorID:    doctorID,
		Type:        req.Type,
		Status:      status,
		Observation: req.Observation,
		Phone:       req.Phone,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.schedulingRepo.Create(tx, scheduling); err != nil {
		if err := schedulingWriteError(err); err != nil {
			return nil, err
		}
		u.log.Warnf("Failed to create scheduling: %+v", err)
		return nil, err
	}

	// Audit log - create scheduling
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionSchedulingCreate, "scheduling", scheduling.ID.String(), converter.SchedulingToSummary(scheduling)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.CreateSchedulingResponse{
		Message:      "Scheduling created successfully",
		SchedulingID: scheduling.ID,
	}, nil
}

func (u *schedulingUsecase) GetAll(ctx context.Context, filter entity.SchedulingFilter, params pagination.Params) (*pagination.Page[dto.SchedulingResponse], error) {
	schedulings, total, err := u.schedulingRepo.FindAll(u.db.WithContext(ctx), filter, params)
	if err != nil {
		u.log.Warnf("Failed to find schedulings: %+v", err)
		return nil, err
	}

	page := pagination.NewPage(converter.SchedulingsToResponses(schedulings), total, params)
	return &page, nil
}

func (u *schedulingUsecase) GetSimple(ctx context.Context, filter entity.SchedulingFilter, take int) ([]dto.SimpleSchedulingResponse, error) {
	schedulings, err := u.schedulingRepo.FindSimple(u.db.WithContext(ctx), filter, take)
	if err != nil {
		u.log.Warnf("Failed to find simple schedulings: %+v", err)
		return nil, err
	}

	return converter.SchedulingsToSimple(schedulings), nil
}

func (u *schedulingUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.SchedulingResponse, error) {
	scheduling, err := u.schedulingRepo.FindDetail(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find scheduling: %+v", err)
		return nil, err
	}
	if scheduling == nil {
		return nil, ErrSchedulingNotFound
	}

	return converter.SchedulingToResponse(scheduling), nil
}

func (u *schedulingUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSchedulingRequest) (*dto.SchedulingResponse, error) {
	var patientID, doctorID *uuid.UUID
	if req.PatientID != nil {
		parsed, err := parseID(*req.PatientID, "patientId")
		if err != nil {
			return nil, err
		}
		patientID = &parsed
	}
	if req.DoctorID != nil {
		parsed, err := parseID(*req.DoctorID, "doctorId")
		if err != nil {
			return nil, err
		}
		doctorID = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	scheduling, err := u.schedulingRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find scheduling: %+v", err)
		return nil, err
	}
	if scheduling == nil {
		return nil, ErrSchedulingNotFound
	}

	// Capture old value for audit
	oldValue := converter.SchedulingToSummary(scheduling)

	if patientID != nil && *patientID == scheduling.PatientID {
		patientID = nil
	}
	if doctorID != nil && *doctorID == scheduling.DoctorID {
		doctorID = nil
	}
	if err := u.checkParticipants(ctx, patientID, doctorID); err != nil {
		return nil, err
	}

	var fields []string
	if req.Hours != nil {
		scheduling.Hours = *req.Hours
		fields = append(fields, "hours")
	}
	if req.Type != nil {
		scheduling.Type = *req.Type
		fields = append(fields, "type")
	}
	if req.Status != nil {
		scheduling.Status = strings.TrimSpace(*req.Status)
		fields = append(fields, "status")
	}
	if req.Observation != nil {
		scheduling.Observation = *req.Observation
		fields = append(fields, "observation")
	}
	if req.Phone != nil {
		scheduling.Phone = *req.Phone
		fields = append(fields, "phone")
	}
	if patientID != nil {
		scheduling.PatientID = *patientID
		fields = append(fields, "patient_id")
	}
	if doctorID != nil {
		scheduling.DoctorID = *doctorID
		fields = append(fields, "doctor_id")
	}

	if len(fields) > 0 {
		if err := u.schedulingRepo.Update(tx, scheduling, fields...); err != nil {
			if err := schedulingWriteError(err); err != nil {
				return nil, err
			}
			u.log.Warnf("Failed to update scheduling: %+v", err)
			return nil, err
		}

		// Audit log - update scheduling
		if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionSchedulingUpdate, "scheduling", scheduling.ID.String(), oldValue, converter.SchedulingToSummary(scheduling)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
	}

	detail, err := u.schedulingRepo.FindDetail(tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload scheduling: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SchedulingToResponse(detail), nil
}

func (u *schedulingUsecase) Remove(ctx context.Context, id uuid.UUID) (*dto.RemovedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	scheduling, err := u.schedulingRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find scheduling: %+v", err)
		return nil, err
	}
	if scheduling == nil {
		return nil, ErrSchedulingNotFound
	}
	oldValue := converter.SchedulingToSummary(scheduling)

	cancelled, err := u.schedulingRepo.Cancel(tx, id)
	if err != nil {
		u.log.Warnf("Failed to cancel scheduling: %+v", err)
		return nil, err
	}
	if !cancelled {
		return nil, ErrSchedulingNotFound
	}

	// Audit log - cancel scheduling
	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionSchedulingCancel, "scheduling", id.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RemovedResponse{Message: "Scheduling cancelled successfully", ID: id}, nil
}

// checkParticipants verifies patient and doctor concurrently. Nil ids are skipped.
func (u *schedulingUsecase) checkParticipants(ctx context.Context, patientID, doctorID *uuid.UUID) error {
	var patientOK, doctorOK = true, true

	g, gctx := errgroup.WithContext(ctx)
	if patientID != nil {
		g.Go(func() error {
			ok, err := u.patientRepo.Exists(u.db.WithContext(gctx), *patientID)
			patientOK = ok
			return err
		})
	}
	if doctorID != nil {
		g.Go(func() error {
			ok, err := u.adminRepo.Exists(u.db.WithContext(gctx), *doctorID)
			doctorOK = ok
			return err
		})
	}
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to check scheduling participants: %+v", err)
		return err
	}

	if !patientOK {
		return ErrSchedulingPatientNotFound
	}
	if !doctorOK {
		return ErrSchedulingDoctorNotFound
	}
	return nil
}

func schedulingWriteError(err error) error {
	switch {
	case isForeignKeyError(err, "patient"):
		return ErrSchedulingPatientNotFound
	case isForeignKeyError(err, "doctor"):
		return ErrSchedulingDoctorNotFound
	}
	return nil
}
