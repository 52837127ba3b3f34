package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSupplierRequest struct {
	Name           string `json:"name" validate:"required,notblank,max=255"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,notblank,max=30"`
	IdentityNumber string `json:"identityNumber" validate:"required,notblank,max=50"`
	IsActive       *bool  `json:"isActive"`
}

type UpdateSupplierRequest struct {
	Name           *string `json:"name" validate:"omitempty,notblank,max=255"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone" validate:"omitempty,notblank,max=30"`
	IdentityNumber *string `json:"identityNumber" validate:"omitempty,notblank,max=50"`
	IsActive       *bool   `json:"isActive"`
}

// Response DTOs

type SupplierResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	IdentityNumber string          `json:"identityNumber"`
	IsActive       bool            `json:"isActive"`
	Stocks         []StockResponse `json:"stocks,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type SimpleSupplierResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CreateSupplierResponse struct {
	Message    string    `json:"message"`
	SupplierID uuid.UUID `json:"supplierId"`
}
