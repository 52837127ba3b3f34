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

const consultationPageLimit = 10

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
	log                 *logrus.Logger
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator, log *logrus.Logger) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
		log:                 log,
	}
}

func (h *ConsultationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConsultationRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	res, err := h.consultationUsecase.Create(r.Context(), &req)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to create consultation")
		return
	}

	response.Created(w, res)
}

func (h *ConsultationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params, err := pagination.ParseQuery(q, consultationPageLimit)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get consultations")
		return
	}

	var ok bool
	filter := entity.ConsultationFilter{Search: params.Search}
	if filter.SchedulingID, ok = queryUUID(w, q, "schedulingId"); !ok {
		return
	}
	if filter.DoctorID, ok = queryUUID(w, q, "doctorId"); !ok {
		return
	}

	page, err := h.consultationUsecase.GetAll(r.Context(), filter, params)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get consultations")
		return
	}

	response.OK(w, page)
}

func (h *ConsultationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "consultation")
	if !ok {
		return
	}

	consultation, err := h.consultationUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get consultation")
		return
	}

	response.OK(w, consultation)
}

func (h *ConsultationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "consultation")
	if !ok {
		return
	}

	var req dto.UpdateConsultationRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	consultation, err := h.consultationUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to update consultation")
		return
	}

	response.OK(w, consultation)
}

func (h *ConsultationHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "consultation")
	if !ok {
		return
	}

	res, err := h.consultationUsecase.Remove(r.Context(), id)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to remove consultation")
		return
	}

	response.OK(w, res)
}
