package response

import (
	"encoding/json"
	"net/http"

	"orthocare-api/pkg/apperror"

	"github.com/sirupsen/logrus"
)

// ErrorBody is the shape of every non-2xx response.
type ErrorBody struct {
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors,omitempty"`
}

// MessageBody acknowledges a create or remove.
type MessageBody struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, data)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{
		StatusCode: statusCode,
		Message:    message,
	})
}

func ValidationError(w http.ResponseWriter, errors map[string]string) {
	JSON(w, http.StatusBadRequest, ErrorBody{
		StatusCode: http.StatusBadRequest,
		Message:    "Validation failed",
		Errors:     errors,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}

// Fail writes err with its own status when it is an *apperror.Error and
// logs anything else as an internal error answered with fallback.
func Fail(w http.ResponseWriter, log *logrus.Logger, err error, fallback string) {
	if appErr, ok := apperror.From(err); ok {
		Error(w, appErr.Status, appErr.Message)
		return
	}
	if log != nil {
		log.Errorf("%s: %+v", fallback, err)
	}
	InternalServerError(w, fallback)
}
