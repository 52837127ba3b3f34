package repository

import (
	"orthocare-api/internal/domain/entity"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationRepository interface {
	// Create inserts the consultation together with any attached children.
	Create(db *gorm.DB, consultation *entity.Consultation) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error)
	FindDetail(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error)
	// ExistsForScheduling includes soft-deleted consultations.
	ExistsForScheduling(db *gorm.DB, schedulingID uuid.UUID) (bool, error)
	FindAll(db *gorm.DB, filter entity.ConsultationFilter, params pagination.Params) ([]entity.Consultation, int64, error)
	Touch(db *gorm.DB, consultation *entity.Consultation) error
	UpsertMedicalHistory(db *gorm.DB, history *entity.MedicalHistory) error
	UpsertExam(db *gorm.DB, exam *entity.Exam) error
	UpsertProcedure(db *gorm.DB, procedure *entity.Procedure) error
	ReplaceMedicines(db *gorm.DB, consultationID uuid.UUID, medicines []entity.Medicine) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error)
}
