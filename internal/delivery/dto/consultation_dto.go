package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type MedicalHistoryInput struct {
	Description string `json:"description" validate:"required,notblank"`
}

type MedicineInput struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	Description string `json:"description"`
}

type ExamInput struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	Description string `json:"description"`
	File        string `json:"file"`
}

type ProcedureInput struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	Description string `json:"description"`
	DoctorID    string `json:"doctorId" validate:"omitempty,uuid"`
}

type CreateConsultationRequest struct {
	SchedulingID   string               `json:"schedulingId" validate:"required,uuid"`
	MedicalHistory *MedicalHistoryInput `json:"medicalHistory" validate:"omitempty"`
	Medicines      []MedicineInput      `json:"medicines" validate:"omitempty,dive"`
	Exam           *ExamInput           `json:"exam" validate:"omitempty"`
	Procedure      *ProcedureInput      `json:"procedure" validate:"omitempty"`
}

// UpdateConsultationRequest replaces the medicine list whenever Medicines
// is present, including as an empty array.
type UpdateConsultationRequest struct {
	MedicalHistory *MedicalHistoryInput `json:"medicalHistory" validate:"omitempty"`
	Medicines      *[]MedicineInput     `json:"medicines" validate:"omitempty,dive"`
	Exam           *ExamInput           `json:"exam" validate:"omitempty"`
	Procedure      *ProcedureInput      `json:"procedure" validate:"omitempty"`
}

// Response DTOs

type MedicineResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type ExamResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	File        string    `json:"file"`
}

type ProcedureResponse struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	DoctorID    *uuid.UUID            `json:"doctorId,omitempty"`
	Doctor      *SimplePersonResponse `json:"doctor,omitempty"`
}

type MedicalHistoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
}

// ConsultationSummary is embedded in scheduling details.
type ConsultationSummary struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type ConsultationResponse struct {
	ID             uuid.UUID               `json:"id"`
	SchedulingID   uuid.UUID               `json:"schedulingId"`
	Scheduling     *SchedulingResponse     `json:"scheduling,omitempty"`
	MedicalHistory *MedicalHistoryResponse `json:"medicalHistory,omitempty"`
	Medicines      []MedicineResponse      `json:"medicines"`
	Exam           *ExamResponse           `json:"exam,omitempty"`
	Procedure      *ProcedureResponse      `json:"procedure,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

type CreateConsultationResponse struct {
	Message        string    `json:"message"`
	ConsultationID uuid.UUID `json:"consultationId"`
}
