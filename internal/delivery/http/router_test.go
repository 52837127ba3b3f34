package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orthocare-api/internal/delivery/http/handler"
	"orthocare-api/internal/delivery/http/middleware"
	"orthocare-api/internal/domain/entity"
	"orthocare-api/internal/infrastructure/ratelimit"
	"orthocare-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var adminID = uuid.MustParse("9b2f4c1e-8a11-4b7e-9d0f-3c5e6a7b8c9d")

// testRouter mounts handlers without usecases; only routes that stop in
// middleware or need no usecase may be exercised.
func testRouter(permissions []string, limiter *middleware.RateLimitMiddleware) http.Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	v := validator.NewValidator()

	auth := middleware.NewAuthMiddleware(func(r *http.Request) (*middleware.Principal, error) {
		if r.Header.Get("X-Test-Session") == "" {
			return nil, middleware.ErrMissingSession
		}
		return &middleware.Principal{AdminID: adminID, Email: "root@clinic.test"}, nil
	})

	lookup := func(ctx context.Context, id uuid.UUID) ([]string, error) {
		if id != adminID {
			return nil, errors.New("unexpected admin")
		}
		return permissions, nil
	}

	return NewRouter(log, Handlers{
		Auth:         handler.NewAuthHandler(nil, v, handler.CookieConfig{Name: "access_token", MaxAge: 15 * time.Minute}, log),
		Doctor:       handler.NewDoctorHandler(nil, v, log),
		Profile:      handler.NewProfileHandler(nil, log),
		Patient:      handler.NewPatientHandler(nil, v, log),
		Supplier:     handler.NewSupplierHandler(nil, v, log),
		Stock:        handler.NewStockHandler(nil, v, log),
		Scheduling:   handler.NewSchedulingHandler(nil, v, log),
		Consultation: handler.NewConsultationHandler(nil, v, log),
		AuditLog:     handler.NewAuditLogHandler(nil, log),
	}, auth, middleware.NewCORSMiddleware([]string{"http://localhost:3000"}), limiter, lookup).Setup()
}

func serve(h http.Handler, method, target string, session bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if session {
		req.Header.Set("X-Test-Session", "1")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicAndProtected(t *testing.T) {
	h := testRouter(nil, nil)

	rec := serve(h, http.MethodGet, "/api/health", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	for _, target := range []string{"/api/patients", "/api/doctors/simple", "/api/auth/current-user", "/api/audit-logs"} {
		rec := serve(h, http.MethodGet, target, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestRouter_CurrentUserAndLogout(t *testing.T) {
	h := testRouter(nil, nil)

	rec := serve(h, http.MethodGet, "/api/auth/current-user", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), adminID.String())

	rec = serve(h, http.MethodPost, "/api/auth/logout", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "access_token=;")
}

func TestRouter_Restore(t *testing.T) {
	h := testRouter(nil, nil)

	for _, resource := range []string{"doctors", "patients", "suppliers", "stocks"} {
		rec := serve(h, http.MethodPatch, "/api/"+resource+"/"+uuid.NewString()+"/restore", true)
		assert.Equal(t, http.StatusNotImplemented, rec.Code, resource)
	}

	rec := serve(h, http.MethodPatch, "/api/scheduling/"+uuid.NewString()+"/restore", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_InvalidIDNeverReachesUsecase(t *testing.T) {
	h := testRouter(nil, nil)

	rec := serve(h, http.MethodGet, "/api/consultations/not-a-uuid", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid consultation ID")
}

func TestRouter_AuditLogsPermission(t *testing.T) {
	rec := serve(testRouter([]string{"patients.view"}, nil), http.MethodGet, "/api/audit-logs/12", true)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(testRouter([]string{"patients.view"}, nil), http.MethodGet, "/api/audit-logs?page=0", true)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Past the permission check the page query is rejected before the usecase runs.
	rec = serve(testRouter([]string{entity.PermissionAuditLogsView}, nil), http.MethodGet, "/api/audit-logs?page=0", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(testRouter([]string{entity.PermissionFullAccess}, nil), http.MethodGet, "/api/audit-logs?page=0", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := testRouter(nil, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/patients", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRouter_RateLimit(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := ratelimit.NewMemoryStore(2, time.Minute)
	defer store.Stop()
	h := testRouter(nil, middleware.NewRateLimitMiddleware(store, nil, log))

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/health", false).Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/health", false).Code)

	rec := serve(h, http.MethodGet, "/api/health", false)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
