package handler

import (
	"net/http"
	"strconv"
	"strings"

	"orthocare-api/internal/domain/entity"
	"orthocare-api/internal/usecase"
	"orthocare-api/pkg/pagination"
	"orthocare-api/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const auditLogPageLimit = 15

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	log             *logrus.Logger
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, log *logrus.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		log:             log,
	}
}

func (h *AuditLogHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params, err := pagination.ParseQuery(q, auditLogPageLimit)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get audit logs")
		return
	}

	filter := entity.AuditLogFilter{
		Search: params.Search,
		Action: strings.TrimSpace(q.Get("action")),
	}
	var ok bool
	if filter.AdminID, ok = queryUUID(w, q, "adminId"); !ok {
		return
	}

	page, err := h.auditLogUsecase.GetAll(r.Context(), filter, params)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get audit logs")
		return
	}

	response.OK(w, page)
}

func (h *AuditLogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get audit log")
		return
	}

	response.OK(w, auditLog)
}
