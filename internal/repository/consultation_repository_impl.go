package repository

import (
	"orthocare-api/internal/domain/entity"
	domainRepo "orthocare-api/internal/domain/repository"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(db *gorm.DB, consultation *entity.Consultation) error {
	return db.Omit("Scheduling", "Procedure.Doctor").Create(consultation).Error
}

func (r *consultationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	return first[entity.Consultation](db, "id = ?", id)
}

func (r *consultationRepository) FindDetail(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	return first[entity.Consultation](
		db.Preload("Scheduling.Patient").
			Preload("Scheduling.Doctor").
			Preload("MedicalHistory").
			Preload("Medicines", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("created_at ASC")
			}).
			Preload("Exam").
			Preload("Procedure.Doctor"),
		"id = ?", id,
	)
}

func (r *consultationRepository) ExistsForScheduling(db *gorm.DB, schedulingID uuid.UUID) (bool, error) {
	var count int64
	err := db.Unscoped().Model(&entity.Consultation{}).
		Where("scheduling_id = ?", schedulingID).
		Count(&count).Error
	return count > 0, err
}

func (r *consultationRepository) FindAll(db *gorm.DB, filter entity.ConsultationFilter, params pagination.Params) ([]entity.Consultation, int64, error) {
	return paginate[entity.Consultation](db, params, listQuery{
		filters: []scope{
			search(filter.Search,
				"consultations.scheduling_id IN (SELECT s.id FROM schedulings s JOIN patients p ON p.id = s.patient_id WHERE p.first_name ILIKE ?)",
				"consultations.scheduling_id IN (SELECT s.id FROM schedulings s JOIN patients p ON p.id = s.patient_id WHERE p.last_name ILIKE ?)"),
			whereIf(filter.SchedulingID != nil, "consultations.scheduling_id = ?", derefUUID(filter.SchedulingID)),
			whereIf(filter.DoctorID != nil,
				"consultations.scheduling_id IN (SELECT id FROM schedulings WHERE doctor_id = ?)", derefUUID(filter.DoctorID)),
		},
		preloads: []string{"Scheduling.Patient", "MedicalHistory", "Medicines", "Exam", "Procedure"},
		order:    []string{"consultations.created_at DESC"},
	})
}

// Touch bumps updated_at so an update with only child changes is visible
// on the consultation row.
func (r *consultationRepository) Touch(db *gorm.DB, consultation *entity.Consultation) error {
	return db.Model(consultation).Update("updated_at", gorm.Expr("NOW()")).Error
}

func (r *consultationRepository) UpsertMedicalHistory(db *gorm.DB, history *entity.MedicalHistory) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "consultation_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "updated_at"}),
	}).Create(history).Error
}

func (r *consultationRepository) UpsertExam(db *gorm.DB, exam *entity.Exam) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "consultation_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "file", "updated_at"}),
	}).Create(exam).Error
}

func (r *consultationRepository) UpsertProcedure(db *gorm.DB, procedure *entity.Procedure) error {
	return db.Omit("Doctor").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "consultation_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "doctor_id", "updated_at"}),
	}).Create(procedure).Error
}

// ReplaceMedicines deletes every medicine of the consultation and inserts
// the given list in its place.
func (r *consultationRepository) ReplaceMedicines(db *gorm.DB, consultationID uuid.UUID, medicines []entity.Medicine) error {
	if err := db.Where("consultation_id = ?", consultationID).Delete(&entity.Medicine{}).Error; err != nil {
		return err
	}
	if len(medicines) == 0 {
		return nil
	}
	for i := range medicines {
		medicines[i].ConsultationID = consultationID
	}
	return db.Create(&medicines).Error
}

func (r *consultationRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error) {
	return softDelete(db, &entity.Consultation{}, id, nil)
}
