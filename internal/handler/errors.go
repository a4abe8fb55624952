package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"socialfeed/internal/repository"
	"socialfeed/internal/service"
)

type ErrorMessage struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error ErrorMessage `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, ErrorResponse{Error: ErrorMessage{Message: message}}, statusCode)
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps an error from the service or repository layer onto a
// response. resource names the entity in 404 and 409 messages.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error, resource string) {
	var validationErr *service.ValidationError
	var conflictErr *service.ConflictError

	switch {
	case errors.As(err, &validationErr):
		WriteError(w, validationErr.Message, http.StatusBadRequest)
	case errors.As(err, &conflictErr):
		WriteError(w, conflictErr.Message, http.StatusConflict)
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, resource+" doesn't exist", http.StatusNotFound)
	case errors.Is(err, repository.ErrConflict):
		WriteError(w, resource+" already exists", http.StatusConflict)
	case errors.Is(err, repository.ErrInUse):
		WriteError(w, resource+" is still referenced", http.StatusConflict)
	case errors.Is(err, repository.ErrInvalidReference):
		WriteError(w, "Referenced "+referencedEntity(err)+" doesn't exist", http.StatusBadRequest)
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, service.ErrStorageDisabled):
		WriteError(w, "Image storage is disabled", http.StatusServiceUnavailable)
	default:
		h.Logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error(),
		)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
	}
}

func referencedEntity(err error) string {
	constraint := repository.Constraint(err)
	switch {
	case strings.Contains(constraint, "post_id"):
		return "post"
	case strings.Contains(constraint, "user_id"):
		return "user"
	default:
		return "record"
	}
}

// validationMessage names the first absent field in declaration order, or the
// first invalid one when nothing is missing.
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "Invalid request body"
	}

	for _, fe := range errs {
		if fe.Tag() == "required" {
			return fmt.Sprintf("Missing '%s' in request body", fe.Field())
		}
	}
	return fmt.Sprintf("Invalid '%s' in request body", errs[0].Field())
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
