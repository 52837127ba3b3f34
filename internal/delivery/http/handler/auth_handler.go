package handler

import (
	"net/http"
	"time"

	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/delivery/http/middleware"
	"orthocare-api/internal/usecase"
	"orthocare-api/pkg/response"
	"orthocare-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

// CookieConfig describes the session cookie issued on login.
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	cookie      CookieConfig
	log         *logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, cookie CookieConfig, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		cookie:      cookie,
		log:         log,
	}
}

// Login checks the credentials and sets the session cookie.
// @Summary Login admin
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		response.Fail(w, h.log, err, "Failed to login")
		return
	}

	http.SetCookie(w, h.sessionCookie(result.Token, int(h.cookie.MaxAge.Seconds())))
	response.OK(w, result.Response)
}

// CurrentUser returns the decoded session of the caller.
// @Summary Get current admin
// @Tags Auth
// @Produce json
// @Success 200 {object} middleware.Principal
// @Failure 401 {object} response.ErrorBody
// @Router /auth/current-user [get]
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	response.OK(w, principal)
}

// Logout expires the session cookie. The token itself stays valid until
// its own expiry.
// @Summary Logout admin
// @Tags Auth
// @Produce json
// @Success 200 {object} response.MessageBody
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	response.OK(w, response.MessageBody{Message: "Logout successful"})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
