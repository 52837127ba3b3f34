package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"orthocare-api/internal/usecase"
	"orthocare-api/pkg/response"
	"orthocare-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// decodeAndValidate reads a JSON body into req and runs the validator on it.
// It writes the 400 itself and reports whether the handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}

	return true
}

// pathID parses the {id} route variable as a UUID.
func pathID(w http.ResponseWriter, r *http.Request, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid "+entity+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID reads an optional UUID filter from the query string.
func queryUUID(w http.ResponseWriter, q url.Values, key string) (*uuid.UUID, bool) {
	raw := q.Get(key)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(w, key+" must be a valid UUID")
		return nil, false
	}
	return &id, true
}

// Restore answers every /{id}/restore route. Soft-deleted rows are not
// brought back through the API.
func Restore(w http.ResponseWriter, r *http.Request) {
	response.Fail(w, nil, usecase.ErrRestoreNotImplemented, "Failed to restore")
}

func Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"status": "ok"})
}
