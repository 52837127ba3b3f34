package handler

import (
	"net/http"
	"strings"

	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"
	"orthocare-api/internal/usecase"
	"orthocare-api/pkg/pagination"
	"orthocare-api/pkg/response"
	"orthocare-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

const schedulingPageLimit = 15

type SchedulingHandler struct {
	schedulingUsecase usecase.SchedulingUsecase
	validator         *validator.CustomValidator
	log               *logrus.Logger
}

func NewSchedulingHandler(schedulingUsecase usecase.SchedulingUsecase, validator *validator.CustomValidator, log *logrus.Logger) *SchedulingHandler {
	return &SchedulingHandler{
		schedulingUsecase: schedulingUsecase,
		validator:         validator,
		log:               log,
	}
}

func (h *SchedulingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSchedulingRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	res, err := h.schedulingUsecase.Create(r.Context(), &req)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to create scheduling")
		return
	}

	response.Created(w, res)
}

func (h *SchedulingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params, err := pagination.ParseQuery(q, schedulingPageLimit)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get schedulings")
		return
	}

	filter, ok := schedulingFilter(w, r)
	if !ok {
		return
	}
	filter.Search = params.Search

	page, err := h.schedulingUsecase.GetAll(r.Context(), filter, params)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get schedulings")
		return
	}

	response.OK(w, page)
}

func (h *SchedulingHandler) GetSimple(w http.ResponseWriter, r *http.Request) {
	take, err := pagination.ParseTake(r.URL.Query())
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get schedulings")
		return
	}

	filter, ok := schedulingFilter(w, r)
	if !ok {
		return
	}

	schedulings, err := h.schedulingUsecase.GetSimple(r.Context(), filter, take)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get schedulings")
		return
	}

	response.OK(w, schedulings)
}

func (h *SchedulingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "scheduling")
	if !ok {
		return
	}

	scheduling, err := h.schedulingUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get scheduling")
		return
	}

	response.OK(w, scheduling)
}

func (h *SchedulingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "scheduling")
	if !ok {
		return
	}

	var req dto.UpdateSchedulingRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	scheduling, err := h.schedulingUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to update scheduling")
		return
	}

	response.OK(w, scheduling)
}

func (h *SchedulingHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "scheduling")
	if !ok {
		return
	}

	res, err := h.schedulingUsecase.Remove(r.Context(), id)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to cancel scheduling")
		return
	}

	response.OK(w, res)
}

func schedulingFilter(w http.ResponseWriter, r *http.Request) (entity.SchedulingFilter, bool) {
	q := r.URL.Query()
	filter := entity.SchedulingFilter{Status: strings.TrimSpace(q.Get("status"))}

	var ok bool
	if filter.PatientID, ok = queryUUID(w, q, "patientId"); !ok {
		return filter, false
	}
	if filter.DoctorID, ok = queryUUID(w, q, "doctorId"); !ok {
		return filter, false
	}
	return filter, true
}
