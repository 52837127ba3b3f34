package handler

import (
	"net/http"

	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"
	"orthocare-api/internal/usecase"
	"orthocare-api/pkg/pagination"
	"orthocare-api/pkg/response"
	"orthocare-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

const stockPageLimit = 15

type StockHandler struct {
	stockUsecase usecase.StockUsecase
	validator    *validator.CustomValidator
	log          *logrus.Logger
}

func NewStockHandler(stockUsecase usecase.StockUsecase, validator *validator.CustomValidator, log *logrus.Logger) *StockHandler {
	return &StockHandler{
		stockUsecase: stockUsecase,
		validator:    validator,
		log:          log,
	}
}

func (h *StockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStockRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	res, err := h.stockUsecase.Create(r.Context(), &req)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to create stock")
		return
	}

	response.Created(w, res)
}

func (h *StockHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params, err := pagination.ParseQuery(q, stockPageLimit)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get stocks")
		return
	}

	var ok bool
	filter := entity.StockFilter{Search: params.Search}
	if filter.SupplierID, ok = queryUUID(w, q, "supplierId"); !ok {
		return
	}
	if filter.CategoryID, ok = queryUUID(w, q, "categoryId"); !ok {
		return
	}
	if filter.MinQuantity, err = pagination.ParseInt(q, "minQuantity"); err != nil {
		response.Fail(w, h.log, err, "Failed to get stocks")
		return
	}

	page, err := h.stockUsecase.GetAll(r.Context(), filter, params)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get stocks")
		return
	}

	response.OK(w, page)
}

func (h *StockHandler) GetSimple(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	take, err := pagination.ParseTake(q)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get stocks")
		return
	}

	stocks, err := h.stockUsecase.GetSimple(r.Context(), q.Get("search"), take)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get stocks")
		return
	}

	response.OK(w, stocks)
}

func (h *StockHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "stock")
	if !ok {
		return
	}

	stock, err := h.stockUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get stock")
		return
	}

	response.OK(w, stock)
}

func (h *StockHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "stock")
	if !ok {
		return
	}

	var req dto.UpdateStockRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	stock, err := h.stockUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to update stock")
		return
	}

	response.OK(w, stock)
}

func (h *StockHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "stock")
	if !ok {
		return
	}

	res, err := h.stockUsecase.Remove(r.Context(), id)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to remove stock")
		return
	}

	response.OK(w, res)
}

// GetCategories lists the stock categories for dropdowns.
func (h *StockHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.stockUsecase.GetCategories(r.Context())
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get categories")
		return
	}

	response.OK(w, categories)
}
