package converter

import (
	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"
)

func CategoryToResponse(category *entity.Category) *dto.CategoryResponse {
	if category == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:    category.ID,
		Name:  category.Name,
		Label: category.Label,
	}
}

func CategoriesToResponses(categories []entity.Category) []dto.CategoryResponse {
	responses := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *CategoryToResponse(&categories[i])
	}
	return responses
}

func StockToResponse(stock *entity.Stock) *dto.StockResponse {
	if stock == nil {
		return nil
	}
	return &dto.StockResponse{
		ID:         stock.ID,
		Name:       stock.Name,
		Quantity:   stock.Quantity,
		UnitPrice:  stock.UnitPrice,
		SupplierID: stock.SupplierID,
		CategoryID: stock.CategoryID,
		Supplier:   SupplierToSimple(stock.Supplier),
		Category:   CategoryToResponse(stock.Category),
		CreatedAt:  stock.CreatedAt,
		UpdatedAt:  stock.UpdatedAt,
	}
}

func StocksToResponses(stocks []entity.Stock) []dto.StockResponse {
	responses := make([]dto.StockResponse, len(stocks))
	for i := range stocks {
		responses[i] = *StockToResponse(&stocks[i])
	}
	return responses
}

func StocksToSimple(stocks []entity.Stock) []dto.SimpleStockResponse {
	responses := make([]dto.SimpleStockResponse, len(stocks))
	for i, s := range stocks {
		responses[i] = dto.SimpleStockResponse{ID: s.ID, Name: s.Name, Quantity: s.Quantity}
	}
	return responses
}
