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

const supplierPageLimit = 15

type SupplierHandler struct {
	supplierUsecase usecase.SupplierUsecase
	validator      *validator.CustomValidator
	log            *logrus.Logger
}

func NewSupplierHandler(supplierUsecase usecase.SupplierUsecase, validator *validator.CustomValidator, log *logrus.Logger) *SupplierHandler {
	return &SupplierHandler{
		supplierUsecase: supplierUsecase,
		validator:      validator,
		log:            log,
	}
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSupplierRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	res, err := h.supplierUsecase.Create(r.Context(), &req)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to create supplier")
		return
	}

	response.Created(w, res)
}

func (h *SupplierHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params, err := pagination.ParseQuery(q, supplierPageLimit)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get suppliers")
		return
	}
	activeOnly, err := pagination.ParseBool(q, "activeOnly")
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get suppliers")
		return
	}

	filter := entity.SupplierFilter{Search: params.Search}
	if activeOnly != nil {
		filter.ActiveOnly = *activeOnly
	}

	page, err := h.supplierUsecase.GetAll(r.Context(), filter, params)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get suppliers")
		return
	}

	response.OK(w, page)
}

func (h *SupplierHandler) GetSimple(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	take, err := pagination.ParseTake(q)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get suppliers")
		return
	}

	suppliers, err := h.supplierUsecase.GetSimple(r.Context(), q.Get("search"), take)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get suppliers")
		return
	}

	response.OK(w, suppliers)
}

func (h *SupplierHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "supplier")
	if !ok {
		return
	}

	supplier, err := h.supplierUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get supplier")
		return
	}

	response.OK(w, supplier)
}

func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "supplier")
	if !ok {
		return
	}

	var req dto.UpdateSupplierRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	supplier, err := h.supplierUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to update supplier")
		return
	}

	response.OK(w, supplier)
}

func (h *SupplierHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "supplier")
	if !ok {
		return
	}

	res, err := h.supplierUsecase.Remove(r.Context(), id)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to remove supplier")
		return
	}

	response.OK(w, res)
}
