package repository

import (
	"orthocare-api/internal/domain/entity"
	domainRepo "orthocare-api/internal/domain/repository"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type schedulingRepository struct{}

func NewSchedulingRepository() domainRepo.SchedulingRepository {
	return &schedulingRepository{}
}

func (r *schedulingRepository) Create(db *gorm.DB, scheduling *entity.Scheduling) error {
	return db.Omit("Patient", "Doctor", "Consultation").Create(scheduling).Error
}

func (r *schedulingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Scheduling, error) {
	return first[entity.Scheduling](db, "id = ?", id)
}

func (r *schedulingRepository) FindDetail(db *gorm.DB, id uuid.UUID) (*entity.Scheduling, error) {
	return first[entity.Scheduling](
		db.Preload("Patient").Preload("Doctor").Preload("Consultation"),
		"id = ?", id,
	)
}

func schedulingFilters(filter entity.SchedulingFilter) []scope {
	return []scope{
		search(filter.Search, "phone ILIKE ?", "observation ILIKE ?", "type ILIKE ?"),
		whereIf(filter.PatientID != nil, "patient_id = ?", derefUUID(filter.PatientID)),
		whereIf(filter.DoctorID != nil, "doctor_id = ?", derefUUID(filter.DoctorID)),
		whereIf(filter.Status != "", "status = ?", filter.Status),
	}
}

func (r *schedulingRepository) FindAll(db *gorm.DB, filter entity.SchedulingFilter, params pagination.Params) ([]entity.Scheduling, int64, error) {
	return paginate[entity.Scheduling](db, params, listQuery{
		filters:  schedulingFilters(filter),
		preloads: []string{"Patient", "Doctor"},
		order:    []string{"created_at DESC"},
	})
}

func (r *schedulingRepository) FindSimple(db *gorm.DB, filter entity.SchedulingFilter, take int) ([]entity.Scheduling, error) {
	var schedulings []entity.Scheduling
	err := db.
		Select("id", "hours", "status", "patient_id").
		Scopes(schedulingFilters(filter)...).
		Preload("Patient", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "first_name", "last_name")
		}).
		Order("created_at DESC").
		Limit(take).
		Find(&schedulings).Error
	return schedulings, err
}

func (r *schedulingRepository) Update(db *gorm.DB, scheduling *entity.Scheduling, fields ...string) error {
	return update(db, scheduling, fields)
}

func (r *schedulingRepository) Cancel(db *gorm.DB, id uuid.UUID) (bool, error) {
	return softDelete(db, &entity.Scheduling{}, id, map[string]interface{}{"status": entity.SchedulingStatusCancelled})
}
