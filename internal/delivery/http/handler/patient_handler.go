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

const patientPageLimit = 15

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
	log            *logrus.Logger
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator, log *logrus.Logger) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
		log:            log,
	}
}

func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	res, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to create patient")
		return
	}

	response.Created(w, res)
}

func (h *PatientHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params, err := pagination.ParseQuery(q, patientPageLimit)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get patients")
		return
	}
	activeOnly, err := pagination.ParseBool(q, "activeOnly")
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get patients")
		return
	}

	filter := entity.PatientFilter{Search: params.Search}
	if activeOnly != nil {
		filter.ActiveOnly = *activeOnly
	}

	page, err := h.patientUsecase.GetAll(r.Context(), filter, params)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get patients")
		return
	}

	response.OK(w, page)
}

func (h *PatientHandler) GetSimple(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	take, err := pagination.ParseTake(q)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get patients")
		return
	}

	patients, err := h.patientUsecase.GetSimple(r.Context(), q.Get("search"), take)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get patients")
		return
	}

	response.OK(w, patients)
}

func (h *PatientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "patient")
	if !ok {
		return
	}

	patient, err := h.patientUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get patient")
		return
	}

	response.OK(w, patient)
}

func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "patient")
	if !ok {
		return
	}

	var req dto.UpdatePatientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to update patient")
		return
	}

	response.OK(w, patient)
}

func (h *PatientHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "patient")
	if !ok {
		return
	}

	res, err := h.patientUsecase.Remove(r.Context(), id)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to remove patient")
		return
	}

	response.OK(w, res)
}
