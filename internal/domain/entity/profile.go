package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile groups permissions and is assigned to admins.
type Profile struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"type:varchar(100);not null" json:"name"`
	Label       string         `gorm:"type:varchar(255);not null" json:"label"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Permissions []Permission `gorm:"many2many:profile_permissions" json:"permissions,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}

const ProfileGeneralAdmin = "GENERAL_ADMIN"
