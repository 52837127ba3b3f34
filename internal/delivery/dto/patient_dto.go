package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	FirstName      string `json:"firstName" validate:"required,notblank,max=100"`
	LastName       string `json:"lastName" validate:"required,notblank,max=100"`
	BirthDate      string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Email          string `json:"email" validate:"required,email"`
	IdentityNumber string `json:"identityNumber" validate:"required,notblank,max=50"`
	Phone          string `json:"phone" validate:"required,notblank,max=30"`
	IsActive       *bool  `json:"isActive"`
}

type UpdatePatientRequest struct {
	FirstName      *string `json:"firstName" validate:"omitempty,notblank,max=100"`
	LastName       *string `json:"lastName" validate:"omitempty,notblank,max=100"`
	BirthDate      *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Email          *string `json:"email" validate:"omitempty,email"`
	IdentityNumber *string `json:"identityNumber" validate:"omitempty,notblank,max=50"`
	Phone          *string `json:"phone" validate:"omitempty,notblank,max=30"`
	IsActive       *bool   `json:"isActive"`
}

// Response DTOs

type PatientResponse struct {
	ID             uuid.UUID                   `json:"id"`
	FirstName      string                      `json:"firstName"`
	LastName       string                      `json:"lastName"`
	FullName       string                      `json:"fullName"`
	BirthDate      string                      `json:"birthDate"`
	Email          string                      `json:"email"`
	IdentityNumber string                      `json:"identityNumber"`
	Phone          string                      `json:"phone"`
	IsActive       bool                        `json:"isActive"`
	Schedulings    []SchedulingSummaryResponse `json:"schedulings,omitempty"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
}

type CreatePatientResponse struct {
	Message   string    `json:"message"`
	PatientID uuid.UUID `json:"patientId"`
}
