package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Supplier struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string         `gorm:"type:varchar(255);not null" json:"name"`
	Email          string         `gorm:"type:varchar(255);not null" json:"email"`
	Phone          string         `gorm:"type:varchar(30);not null" json:"phone"`
	IdentityNumber string         `gorm:"type:varchar(50);not null" json:"identityNumber"`
	IsActive       bool           `gorm:"not null" json:"isActive"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Stocks []Stock `gorm:"foreignKey:SupplierID" json:"stocks,omitempty"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
