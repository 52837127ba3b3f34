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

const doctorPageLimit = 10

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
	log           *logrus.Logger
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator, log *logrus.Logger) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
		log:           log,
	}
}

func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	res, err := h.doctorUsecase.Create(r.Context(), &req)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to create doctor")
		return
	}

	response.Created(w, res)
}

func (h *DoctorHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params, err := pagination.ParseQuery(q, doctorPageLimit)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get doctors")
		return
	}
	activeOnly, err := pagination.ParseBool(q, "activeOnly")
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get doctors")
		return
	}

	filter := entity.AdminFilter{Search: params.Search}
	if activeOnly != nil {
		filter.ActiveOnly = *activeOnly
	}

	page, err := h.doctorUsecase.GetAll(r.Context(), filter, params)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get doctors")
		return
	}

	response.OK(w, page)
}

func (h *DoctorHandler) GetSimple(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	take, err := pagination.ParseTake(q)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get doctors")
		return
	}

	doctors, err := h.doctorUsecase.GetSimple(r.Context(), q.Get("search"), take)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get doctors")
		return
	}

	response.OK(w, doctors)
}

func (h *DoctorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "doctor")
	if !ok {
		return
	}

	doctor, err := h.doctorUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get doctor")
		return
	}

	response.OK(w, doctor)
}

func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "doctor")
	if !ok {
		return
	}

	var req dto.UpdateDoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	doctor, err := h.doctorUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to update doctor")
		return
	}

	response.OK(w, doctor)
}

func (h *DoctorHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "doctor")
	if !ok {
		return
	}

	res, err := h.doctorUsecase.Remove(r.Context(), id)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to remove doctor")
		return
	}

	response.OK(w, res)
}
