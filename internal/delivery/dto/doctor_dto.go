package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	FirstName      string `json:"firstName" validate:"required,notblank,max=100"`
	LastName       string `json:"lastName" validate:"required,notblank,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	IdentityNumber string `json:"identityNumber" validate:"required,notblank,max=50"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
	ProfileID      string `json:"profileId" validate:"required,uuid"`
	IsRoot         bool   `json:"isRoot"`
}

type UpdateDoctorRequest struct {
	FirstName      *string `json:"firstName" validate:"omitempty,notblank,max=100"`
	LastName       *string `json:"lastName" validate:"omitempty,notblank,max=100"`
	Email          *string `json:"email" validate:"omitempty,email"`
	IdentityNumber *string `json:"identityNumber" validate:"omitempty,notblank,max=50"`
	Phone          *string `json:"phone" validate:"omitempty,max=30"`
	ProfileID      *string `json:"profileId" validate:"omitempty,uuid"`
	IsActive       *bool   `json:"isActive"`
}

// Response DTOs

type DoctorResponse struct {
	ID             uuid.UUID        `json:"id"`
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName"`
	FullName       string           `json:"fullName"`
	Email          string           `json:"email"`
	IdentityNumber string           `json:"identityNumber"`
	Phone          string           `json:"phone"`
	IsActive       bool             `json:"isActive"`
	IsRoot         bool             `json:"isRoot"`
	ProfileID      uuid.UUID        `json:"profileId"`
	Profile        *ProfileResponse `json:"profile,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type CreateDoctorResponse struct {
	Message  string    `json:"message"`
	DoctorID uuid.UUID `json:"doctorId"`
}
