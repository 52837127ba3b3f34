package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSchedulingRequest struct {
	Hours       string `json:"hours" validate:"required,notblank,max=50"`
	PatientID   string `json:"patientId" validate:"required,uuid"`
	DoctorID    string `json:"doctorId" validate:"required,uuid"`
	Type        string `json:"type" validate:"required,notblank,max=100"`
	Status      string `json:"status" validate:"omitempty,max=50"`
	Observation string `json:"observation"`
	Phone       string `json:"phone" validate:"required,notblank,max=30"`
}

type UpdateSchedulingRequest struct {
	Hours       *string `json:"hours" validate:"omitempty,notblank,max=50"`
	PatientID   *string `json:"patientId" validate:"omitempty,uuid"`
	DoctorID    *string `json:"doctorId" validate:"omitempty,uuid"`
	Type        *string `json:"type" validate:"omitempty,notblank,max=100"`
	Status      *string `json:"status" validate:"omitempty,notblank,max=50"`
	Observation *string `json:"observation"`
	Phone       *string `json:"phone" validate:"omitempty,notblank,max=30"`
}

// Response DTOs

// SchedulingSummaryResponse is a scheduling without its relations.
type SchedulingSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	Hours       string    `json:"hours"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Observation string    `json:"observation"`
	Phone       string    `json:"phone"`
	PatientID   uuid.UUID `json:"patientId"`
	DoctorID    uuid.UUID `json:"doctorId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SchedulingResponse struct {
	SchedulingSummaryResponse
	Patient      *SimplePersonResponse `json:"patient,omitempty"`
	Doctor       *SimplePersonResponse `json:"doctor,omitempty"`
	Consultation *ConsultationSummary  `json:"consultation,omitempty"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

type SimpleSchedulingResponse struct {
	ID          uuid.UUID `json:"id"`
	Hours       string    `json:"hours"`
	Status      string    `json:"status"`
	PatientName string    `json:"patientName"`
}

type CreateSchedulingResponse struct {
	Message      string    `json:"message"`
	SchedulingID uuid.UUID `json:"schedulingId"`
}
