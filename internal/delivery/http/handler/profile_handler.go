package handler

import (
	"net/http"

	"orthocare-api/internal/domain/entity"
	"orthocare-api/internal/usecase"
	"orthocare-api/pkg/pagination"
	"orthocare-api/pkg/response"

	"github.com/sirupsen/logrus"
)

const profilePageLimit = 15

// ProfileHandler serves profiles and the permission catalogue. Both are
// read-only over HTTP; cmd/seed maintains them.
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	log            *logrus.Logger
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, log *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		log:            log,
	}
}

func (h *ProfileHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQuery(r.URL.Query(), profilePageLimit)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get profiles")
		return
	}

	page, err := h.profileUsecase.GetAll(r.Context(), entity.ProfileFilter{Search: params.Search}, params)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get profiles")
		return
	}

	response.OK(w, page)
}

func (h *ProfileHandler) GetSimple(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	includePermissions, err := pagination.ParseBool(q, "includePermissions")
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get profiles")
		return
	}

	profiles, err := h.profileUsecase.GetSimple(r.Context(), q.Get("search"), includePermissions != nil && *includePermissions)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get profiles")
		return
	}

	response.OK(w, profiles)
}

func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "profile")
	if !ok {
		return
	}

	profile, err := h.profileUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get profile")
		return
	}

	response.OK(w, profile)
}

func (h *ProfileHandler) GetPermissions(w http.ResponseWriter, r *http.Request) {
	permissions, err := h.profileUsecase.GetPermissions(r.Context())
	if err != nil {
		response.Fail(w, h.log, err, "Failed to get permissions")
		return
	}

	response.OK(w, permissions)
}
