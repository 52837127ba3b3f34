package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateStockRequest struct {
	Name       string           `json:"name" validate:"required,notblank,max=255"`
	SupplierID string           `json:"supplierId" validate:"required,uuid"`
	CategoryID string           `json:"categoryId" validate:"required,uuid"`
	Quantity   *int             `json:"quantity" validate:"required,gte=0"`
	UnitPrice  *decimal.Decimal `json:"unitPrice" validate:"omitempty,money"`
}

type UpdateStockRequest struct {
	Name       *string          `json:"name" validate:"omitempty,notblank,max=255"`
	SupplierID *string          `json:"supplierId" validate:"omitempty,uuid"`
	CategoryID *string          `json:"categoryId" validate:"omitempty,uuid"`
	Quantity   *int             `json:"quantity" validate:"omitempty,gte=0"`
	UnitPrice  *decimal.Decimal `json:"unitPrice" validate:"omitempty,money"`
}

// Response DTOs

type CategoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Label string    `json:"label"`
}

type StockResponse struct {
	ID         uuid.UUID               `json:"id"`
	Name       string                  `json:"name"`
	Quantity   int                     `json:"quantity"`
	UnitPrice  decimal.Decimal         `json:"unitPrice"`
	SupplierID uuid.UUID               `json:"supplierId"`
	CategoryID uuid.UUID               `json:"categoryId"`
	Supplier   *SimpleSupplierResponse `json:"supplier,omitempty"`
	Category   *CategoryResponse       `json:"category,omitempty"`
	CreatedAt  time.Time               `json:"createdAt"`
	UpdatedAt  time.Time               `json:"updatedAt"`
}

type SimpleStockResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
}

type CreateStockResponse struct {
	Message string    `json:"message"`
	StockID uuid.UUID `json:"stockId"`
}
