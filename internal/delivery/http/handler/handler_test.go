package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/delivery/http/middleware"
	"orthocare-api/internal/domain/entity"
	"orthocare-api/internal/usecase"
	"orthocare-api/pkg/pagination"
	"orthocare-api/pkg/response"
	"orthocare-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func sessionCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResult, error) {
	args := m.Called(req.Email, req.Password)
	res, _ := args.Get(0).(*dto.LoginResult)
	return res, args.Error(1)
}

func (m *mockAuthUsecase) Permissions(ctx context.Context, adminID uuid.UUID) ([]string, error) {
	args := m.Called(adminID)
	return args.Get(0).([]string), args.Error(1)
}

type mockPatientUsecase struct {
	mock.Mock
}

func (m *mockPatientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.CreatePatientResponse, error) {
	args := m.Called(req)
	res, _ := args.Get(0).(*dto.CreatePatientResponse)
	return res, args.Error(1)
}

func (m *mockPatientUsecase) GetAll(ctx context.Context, filter entity.PatientFilter, params pagination.Params) (*pagination.Page[dto.PatientResponse], error) {
	args := m.Called(filter, params)
	res, _ := args.Get(0).(*pagination.Page[dto.PatientResponse])
	return res, args.Error(1)
}

func (m *mockPatientUsecase) GetSimple(ctx context.Context, search string, take int) ([]dto.SimplePersonResponse, error) {
	args := m.Called(search, take)
	res, _ := args.Get(0).([]dto.SimplePersonResponse)
	return res, args.Error(1)
}

func (m *mockPatientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	args := m.Called(id)
	res, _ := args.Get(0).(*dto.PatientResponse)
	return res, args.Error(1)
}

func (m *mockPatientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	args := m.Called(id, req)
	res, _ := args.Get(0).(*dto.PatientResponse)
	return res, args.Error(1)
}

func (m *mockPatientUsecase) Remove(ctx context.Context, id uuid.UUID) (*dto.RemovedResponse, error) {
	args := m.Called(id)
	res, _ := args.Get(0).(*dto.RemovedResponse)
	return res, args.Error(1)
}

func newAuthHandler(uc usecase.AuthUsecase, secure bool) *AuthHandler {
	return NewAuthHandler(uc, validator.NewValidator(), CookieConfig{
		Name:   "access_token",
		Secure: secure,
		MaxAge: 15 * time.Minute,
	}, quietLogger())
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets the session cookie", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		uc.On("Login", "root@clinic.test", "secret1").Return(&dto.LoginResult{
			Token:    "signed.jwt.token",
			Response: dto.LoginResponse{Message: "Login successful"},
		}, nil)

		for _, secure := range []bool{false, true} {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"root@clinic.test","password":"secret1"}`))
			newAuthHandler(uc, secure).Login(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			cookie := sessionCookie(rec, "access_token")
			require.NotNil(t, cookie)
			assert.Equal(t, "signed.jwt.token", cookie.Value)
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
			assert.Equal(t, "/", cookie.Path)
			assert.Equal(t, 900, cookie.MaxAge)
			assert.Equal(t, secure, cookie.Secure)
			assert.NotContains(t, rec.Body.String(), "signed.jwt.token")
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		uc.On("Login", "root@clinic.test", "nope").Return(nil, usecase.ErrInvalidCredentials)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"root@clinic.test","password":"nope"}`))
		newAuthHandler(uc, false).Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid credentials", decodeError(t, rec).Message)
		assert.Nil(t, sessionCookie(rec, "access_token"))
	})

	t.Run("malformed email", func(t *testing.T) {
		uc := new(mockAuthUsecase)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"root","password":"x"}`))
		newAuthHandler(uc, false).Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "Validation failed", body.Message)
		assert.Contains(t, body.Errors, "email")
		uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_CurrentUserAndLogout(t *testing.T) {
	h := newAuthHandler(new(mockAuthUsecase), false)
	principal := &middleware.Principal{AdminID: uuid.New(), Email: "root@clinic.test", IssuedAt: 100, ExpiresAt: 1000}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/current-user", nil)
	h.CurrentUser(rec, req.WithContext(middleware.WithPrincipal(req.Context(), principal)))

	require.Equal(t, http.StatusOK, rec.Code)
	var got middleware.Principal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, *principal, got)

	rec = httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec, "access_token")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestPatientHandler(t *testing.T) {
	newHandler := func(uc usecase.PatientUsecase) *PatientHandler {
		return NewPatientHandler(uc, validator.NewValidator(), quietLogger())
	}

	t.Run("create returns 201", func(t *testing.T) {
		uc := new(mockPatientUsecase)
		id := uuid.New()
		uc.On("Create", mock.AnythingOfType("*dto.CreatePatientRequest")).
			Return(&dto.CreatePatientResponse{Message: "Patient created successfully", PatientID: id}, nil)

		body := `{"firstName":"Maria","lastName":"Silva","birthDate":"1990-04-12","email":"maria@mail.test","identityNumber":"987","phone":"11999990000"}`
		rec := httptest.NewRecorder()
		newHandler(uc).Create(rec, httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)
		var res dto.CreatePatientResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, id, res.PatientID)
	})

	t.Run("create rejects a bad birth date", func(t *testing.T) {
		uc := new(mockPatientUsecase)
		body := `{"firstName":"Maria","lastName":"Silva","birthDate":"12/04/1990","email":"maria@mail.test","identityNumber":"987","phone":"1"}`
		rec := httptest.NewRecorder()
		newHandler(uc).Create(rec, httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Errors, "birthDate")
	})

	t.Run("duplicate maps to 400", func(t *testing.T) {
		uc := new(mockPatientUsecase)
		uc.On("Create", mock.Anything).Return(nil, usecase.ErrPatientEmailExists)

		body := `{"firstName":"Maria","lastName":"Silva","birthDate":"1990-04-12","email":"maria@mail.test","identityNumber":"987","phone":"1"}`
		rec := httptest.NewRecorder()
		newHandler(uc).Create(rec, httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email already in use", decodeError(t, rec).Message)
	})

	t.Run("list parses the query", func(t *testing.T) {
		uc := new(mockPatientUsecase)
		params := pagination.Params{Page: 2, Limit: 5, Search: "silva"}
		page := pagination.NewPage([]dto.PatientResponse{}, 6, params)
		uc.On("GetAll", entity.PatientFilter{Search: "silva", ActiveOnly: true}, params).Return(&page, nil)

		rec := httptest.NewRecorder()
		newHandler(uc).GetAll(rec, httptest.NewRequest(http.MethodGet, "/api/patients?page=2&limit=5&search=%20silva%20&activeOnly=true", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":[],"total":6,"page":2,"limit":5,"totalPages":2}`, rec.Body.String())
	})

	t.Run("list rejects page zero", func(t *testing.T) {
		uc := new(mockPatientUsecase)
		rec := httptest.NewRecorder()
		newHandler(uc).GetAll(rec, httptest.NewRequest(http.MethodGet, "/api/patients?page=0", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "GetAll", mock.Anything, mock.Anything)
	})

	t.Run("simple caps take", func(t *testing.T) {
		uc := new(mockPatientUsecase)
		uc.On("GetSimple", "", pagination.MaxSimpleTake).Return([]dto.SimplePersonResponse{}, nil)

		rec := httptest.NewRecorder()
		newHandler(uc).GetSimple(rec, httptest.NewRequest(http.MethodGet, "/api/patients/simple?take=500", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		uc.AssertExpectations(t)
	})

	t.Run("detail with a malformed id", func(t *testing.T) {
		uc := new(mockPatientUsecase)
		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/patients/abc", nil), map[string]string{"id": "abc"})
		rec := httptest.NewRecorder()
		newHandler(uc).GetByID(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid patient ID", decodeError(t, rec).Message)
	})

	t.Run("detail of a removed patient", func(t *testing.T) {
		uc := new(mockPatientUsecase)
		id := uuid.New()
		uc.On("GetByID", id).Return(nil, usecase.ErrPatientNotFound)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": id.String()})
		rec := httptest.NewRecorder()
		newHandler(uc).GetByID(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("remove", func(t *testing.T) {
		uc := new(mockPatientUsecase)
		id := uuid.New()
		uc.On("Remove", id).Return(&dto.RemovedResponse{Message: "Patient removed successfully", ID: id}, nil)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/", nil), map[string]string{"id": id.String()})
		rec := httptest.NewRecorder()
		newHandler(uc).Remove(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Patient removed successfully","id":"`+id.String()+`"}`, rec.Body.String())
	})

	t.Run("unexpected errors are 500", func(t *testing.T) {
		uc := new(mockPatientUsecase)
		id := uuid.New()
		uc.On("Remove", id).Return(nil, assert.AnError)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/", nil), map[string]string{"id": id.String()})
		rec := httptest.NewRecorder()
		newHandler(uc).Remove(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to remove patient", decodeError(t, rec).Message)
	})
}

func TestStockHandler_RejectsInvalidUnitPrice(t *testing.T) {
	h := NewStockHandler(nil, validator.NewValidator(), quietLogger())
	base := `"name":"Tala gessada","supplierId":"` + uuid.NewString() + `","categoryId":"` + uuid.NewString() + `","quantity":3`

	for _, price := range []string{"-10", "12.345", "12345678901"} {
		rec := httptest.NewRecorder()
		h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/stocks", strings.NewReader(`{`+base+`,"unitPrice":`+price+`}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code, price)
		assert.Contains(t, decodeError(t, rec).Errors, "unitPrice", price)
	}
}

func TestRestore(t *testing.T) {
	rec := httptest.NewRecorder()
	Restore(rec, httptest.NewRequest(http.MethodPatch, "/api/patients/x/restore", nil))

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, http.StatusNotImplemented, body.StatusCode)
	assert.Equal(t, "restore is not implemented", body.Message)
}
