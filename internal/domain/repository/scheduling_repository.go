package repository

import (
	"orthocare-api/internal/domain/entity"
	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchedulingRepository interface {
	Create(db *gorm.DB, scheduling *entity.Scheduling) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Scheduling, error)
	FindDetail(db *gorm.DB, id uuid.UUID) (*entity.Scheduling, error)
	FindAll(db *gorm.DB, filter entity.SchedulingFilter, params pagination.Params) ([]entity.Scheduling, int64, error)
	FindSimple(db *gorm.DB, filter entity.SchedulingFilter, take int) ([]entity.Scheduling, error)
	Update(db *gorm.DB, scheduling *entity.Scheduling, fields ...string) error
	Cancel(db *gorm.DB, id uuid.UUID) (bool, error)
}
