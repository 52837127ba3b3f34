package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SchedulingStatusScheduled = "AGENDADO"
	SchedulingStatusCancelled = "CANCELADO"
)

// Scheduling is an appointment slot booked for a patient with a doctor.
type Scheduling struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Hours       string         `gorm:"type:varchar(50);not null" json:"hours"`
	PatientID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"patientId"`
	DoctorID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"doctorId"`
	Type        string         `gorm:"type:varchar(100);not null" json:"type"`
	Status      string         `gorm:"type:varchar(50);not null" json:"status"`
	Observation string         `gorm:"type:text" json:"observation"`
	Phone       string         `gorm:"type:varchar(30)" json:"phone"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Patient      *Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor       *Admin        `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Consultation *Consultation `gorm:"foreignKey:SchedulingID" json:"consultation,omitempty"`
}

func (Scheduling) TableName() string {
	return "schedulings"
}
