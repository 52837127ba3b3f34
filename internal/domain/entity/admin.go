package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is a staff account. Doctors are admins; the same table backs login.
type Admin struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName      string         `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName       string         `gorm:"type:varchar(100);not null" json:"lastName"`
	Email          string         `gorm:"type:varchar(255);not null" json:"email"`
	PasswordHash   string         `gorm:"column:password_hash;type:text;not null" json:"-"`
	IdentityNumber string         `gorm:"type:varchar(50);not null" json:"identityNumber"`
	Phone          string         `gorm:"type:varchar(30)" json:"phone"`
	IsActive       bool           `gorm:"not null" json:"isActive"`
	IsRoot         bool           `gorm:"not null" json:"isRoot"`
	ProfileID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"profileId"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Profile *Profile `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
}

func (Admin) TableName() string {
	return "admins"
}

func (a *Admin) FullName() string {
	return a.FirstName + " " + a.LastName
}
