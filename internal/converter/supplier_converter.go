package converter

import (
	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"
)

func SupplierToResponse(supplier *entity.Supplier) *dto.SupplierResponse {
	if supplier == nil {
		return nil
	}

	resp := &dto.SupplierResponse{
		ID:             supplier.ID,
		Name:           supplier.Name,
		Email:          supplier.Email,
		Phone:          supplier.Phone,
		IdentityNumber: supplier.IdentityNumber,
		IsActive:       supplier.IsActive,
		CreatedAt:      supplier.CreatedAt,
		UpdatedAt:      supplier.UpdatedAt,
	}
	if len(supplier.Stocks) > 0 {
		resp.Stocks = StocksToResponses(supplier.Stocks)
	}
	return resp
}

func SuppliersToResponses(suppliers []entity.Supplier) []dto.SupplierResponse {
	responses := make([]dto.SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = *SupplierToResponse(&suppliers[i])
	}
	return responses
}

func SupplierToSimple(supplier *entity.Supplier) *dto.SimpleSupplierResponse {
	if supplier == nil {
		return nil
	}
	return &dto.SimpleSupplierResponse{ID: supplier.ID, Name: supplier.Name}
}

func SuppliersToSimple(suppliers []entity.Supplier) []dto.SimpleSupplierResponse {
	responses := make([]dto.SimpleSupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = *SupplierToSimple(&suppliers[i])
	}
	return responses
}
