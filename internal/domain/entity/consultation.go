package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Consultation records what happened during a scheduling. Each scheduling
// has at most one consultation, counting soft-deleted ones.
type Consultation struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SchedulingID uuid.UUID      `gorm:"type:uuid;not null" json:"schedulingId"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Scheduling     *Scheduling     `gorm:"foreignKey:SchedulingID" json:"scheduling,omitempty"`
	MedicalHistory *MedicalHistory `gorm:"foreignKey:ConsultationID" json:"medicalHistory,omitempty"`
	Medicines      []Medicine      `gorm:"foreignKey:ConsultationID" json:"medicines,omitempty"`
	Exam           *Exam           `gorm:"foreignKey:ConsultationID" json:"exam,omitempty"`
	Procedure      *Procedure      `gorm:"foreignKey:ConsultationID" json:"procedure,omitempty"`
}

func (Consultation) TableName() string {
	return "consultations"
}

type MedicalHistory struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ConsultationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"consultationId"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (MedicalHistory) TableName() string {
	return "medical_histories"
}

type Medicine struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ConsultationID uuid.UUID `gorm:"type:uuid;not null;index" json:"consultationId"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Medicine) TableName() string {
	return "medicines"
}

type Exam struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ConsultationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"consultationId"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	File           string    `gorm:"type:text" json:"file"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Exam) TableName() string {
	return "exams"
}

type Procedure struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ConsultationID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"consultationId"`
	Name           string     `gorm:"type:varchar(255);not null" json:"name"`
	Description    string     `gorm:"type:text" json:"description"`
	DoctorID       *uuid.UUID `gorm:"type:uuid;index" json:"doctorId,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Doctor *Admin `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Procedure) TableName() string {
	return "procedures"
}
