package usecase

import (
	"context"

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
	ErrConsultationNotFound           = apperror.NotFound("consultation not found")
	ErrConsultationSchedulingNotFound = apperror.BadRequest("scheduling not found")
	ErrConsultationExists             = apperror.BadRequest("a consultation already exists for this scheduling")
	ErrConsultationDoctorNotFound     = apperror.BadRequest("procedure doctor not found")
)

type ConsultationUsecase interface {
	Create(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.CreateConsultationResponse, error)
	GetAll(ctx context.Context, filter entity.ConsultationFilter, params pagination.Params) (*pagination.Page[dto.ConsultationResponse], error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ConsultationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (*dto.RemovedResponse, error)
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	consultationRepo repository.ConsultationRepository
	schedulingRepo   repository.SchedulingRepository
	adminRepo        repository.AdminRepository
	auditService     service.AuditService
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	consultationRepo repository.ConsultationRepository,
	schedulingRepo repository.SchedulingRepository,
	adminRepo repository.AdminRepository,
	auditService service.AuditService,
) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		consultationRepo: consultationRepo,
		schedulingRepo:   schedulingRepo,
		adminRepo:        adminRepo,
		auditService:     auditService,
	}
}

// Create writes the consultation and its children in one transaction.
func (u *consultationUsecase) Create(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.CreateConsultationResponse, error) {
	schedulingID, err := parseID(req.SchedulingID, "schedulingId")
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	scheduling, err := u.schedulingRepo.FindByID(tx, schedulingID)
	if err != nil {
		u.log.Warnf("Failed to find scheduling: %+v", err)
		return nil, err
	}
	if scheduling == nil {
		return nil, ErrConsultationSchedulingNotFound
	}

	exists, err := u.consultationRepo.ExistsForScheduling(tx, schedulingID)
	if err != nil {
		u.log.Warnf("Failed to check consultation for scheduling: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrConsultationExists
	}

	consultation := &entity.Consultation{SchedulingID: schedulingID}

	if req.MedicalHistory != nil {
		consultation.MedicalHistory = &entity.MedicalHistory{Description: req.MedicalHistory.Description}
	}
	for _, m := range req.Medicines {
		consultation.Medicines = append(consultation.Medicines, entity.Medicine{Name: m.Name, Description: m.Description})
	}
	if req.Exam != nil {
		consultation.Exam = &entity.Exam{
			Name:        req.Exam.Name,
			Description: req.Exam.Description,
			File:        req.Exam.File,
		}
	}
	if req.Procedure != nil {
		procedure, err := u.buildProcedure(tx, req.Procedure)
		if err != nil {
			return nil, err
		}
		consultation.Procedure = procedure
	}

	if err := u.consultationRepo.Create(tx, consultation); err != nil {
		if isDuplicateKeyError(err, "scheduling_id") {
			return nil, ErrConsultationExists
		}
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	// Audit log - create consultation
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionConsultationCreate, "consultation", consultation.ID.String(), converter.ConsultationToResponse(consultation)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.CreateConsultationResponse{
		Message:        "Consultation created successfully",
		ConsultationID: consultation.ID,
	}, nil
}

func (u *consultationUsecase) GetAll(ctx context.Context, filter entity.ConsultationFilter, params pagination.Params) (*pagination.Page[dto.ConsultationResponse], error) {
	consultations, total, err := u.consultationRepo.FindAll(u.db.WithContext(ctx), filter, params)
	if err != nil {
		u.log.Warnf("Failed to find consultations: %+v", err)
		return nil, err
	}

	page := pagination.NewPage(converter.ConsultationsToResponses(consultations), total, params)
	return &page, nil
}

func (u *consultationUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ConsultationResponse, error) {
	consultation, err := u.consultationRepo.FindDetail(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	return converter.ConsultationToResponse(consultation), nil
}

// Update upserts the single-valued children that are present and replaces
// the medicine list when it is present, all in one transaction.
func (u *consultationUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	current, err := u.consultationRepo.FindDetail(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if current == nil {
		return nil, ErrConsultationNotFound
	}

	// Capture old value for audit
	oldValue := converter.ConsultationToResponse(current)

	if req.MedicalHistory != nil {
		history := &entity.MedicalHistory{ConsultationID: id, Description: req.MedicalHistory.Description}
		if err := u.consultationRepo.UpsertMedicalHistory(tx, history); err != nil {
			u.log.Warnf("Failed to save medical history: %+v", err)
			return nil, err
		}
	}

	if req.Exam != nil {
		exam := &entity.Exam{
			ConsultationID: id,
			Name:           req.Exam.Name,
			Description:    req.Exam.Description,
			File:           req.Exam.File,
		}
		if err := u.consultationRepo.UpsertExam(tx, exam); err != nil {
			u.log.Warnf("Failed to save exam: %+v", err)
			return nil, err
		}
	}

	if req.Procedure != nil {
		procedure, err := u.buildProcedure(tx, req.Procedure)
		if err != nil {
			return nil, err
		}
		procedure.ConsultationID = id
		if err := u.consultationRepo.UpsertProcedure(tx, procedure); err != nil {
			u.log.Warnf("Failed to save procedure: %+v", err)
			return nil, err
		}
	}

	if req.Medicines != nil {
		medicines := make([]entity.Medicine, 0, len(*req.Medicines))
		for _, m := range *req.Medicines {
			medicines = append(medicines, entity.Medicine{Name: m.Name, Description: m.Description})
		}
		if err := u.consultationRepo.ReplaceMedicines(tx, id, medicines); err != nil {
			u.log.Warnf("Failed to replace medicines: %+v", err)
			return nil, err
		}
	}

	if err := u.consultationRepo.Touch(tx, current); err != nil {
		u.log.Warnf("Failed to update consultation: %+v", err)
		return nil, err
	}

	updated, err := u.consultationRepo.FindDetail(tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload consultation: %+v", err)
		return nil, err
	}
	newValue := converter.ConsultationToResponse(updated)

	// Audit log - update consultation
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionConsultationUpdate, "consultation", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *consultationUsecase) Remove(ctx context.Context, id uuid.UUID) (*dto.RemovedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	consultation, err := u.consultationRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}
	oldValue := converter.ConsultationToResponse(consultation)

	removed, err := u.consultationRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to remove consultation: %+v", err)
		return nil, err
	}
	if !removed {
		return nil, ErrConsultationNotFound
	}

	// Audit log - remove consultation
	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionConsultationDelete, "consultation", id.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RemovedResponse{Message: "Consultation removed successfully", ID: id}, nil
}

func (u *consultationUsecase) buildProcedure(tx *gorm.DB, in *dto.ProcedureInput) (*entity.Procedure, error) {
	procedure := &entity.Procedure{
		Name:        in.Name,
		Description: in.Description,
	}
	if in.DoctorID == "" {
		return procedure, nil
	}

	doctorID, err := parseID(in.DoctorID, "procedure.doctorId")
	if err != nil {
		return nil, err
	}
	ok, err := u.adminRepo.Exists(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to check procedure doctor: %+v", err)
		return nil, err
	}
	if !ok {
		return nil, ErrConsultationDoctorNotFound
	}
	procedure.DoctorID = &doctorID
	return procedure, nil
}
