package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Patient struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName      string         `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName       string         `gorm:"type:varchar(100);not null" json:"lastName"`
	BirthDate      datatypes.Date `gorm:"type:date;not null" json:"birthDate"`
	Email          string         `gorm:"type:varchar(255);not null" json:"email"`
	IdentityNumber string         `gorm:"type:varchar(50);not null" json:"identityNumber"`
	Phone          string         `gorm:"type:varchar(30);not null" json:"phone"`
	IsActive       bool           `gorm:"not null" json:"isActive"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Schedulings []Scheduling `gorm:"foreignKey:PatientID" json:"schedulings,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
