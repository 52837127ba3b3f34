package repository

import (
	"orthocare-api/internal/domain/entity"
	domainRepo "orthocare-api/internal/domain/repository"
	"orthocare-api/pkg/pagination"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

func (r *auditLogRepository) FindAll(db *gorm.DB, filter entity.AuditLogFilter, params pagination.Params) ([]entity.AuditLog, int64, error) {
	return paginate[entity.AuditLog](db, params, listQuery{
		filters: []scope{
			search(filter.Search, "action ILIKE ?"),
			whereIf(filter.Action != "", "action = ?", filter.Action),
			whereIf(filter.AdminID != nil, "admin_id = ?", derefUUID(filter.AdminID)),
		},
		preloads: []string{"Admin"},
		order:    []string{"created_at DESC", "id DESC"},
	})
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	return first[entity.AuditLog](db.Preload("Admin"), "id = ?", id)
}
