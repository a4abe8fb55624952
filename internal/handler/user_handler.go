package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"socialfeed/internal/models"
	"socialfeed/internal/service"
)

type CreateUserRequest struct {
	Username *string `json:"username" validate:"required,min=1"`
	Email    *string `json:"email" validate:"required,min=1"`
	Password *string `json:"password" validate:"required"`
	ID       *int64  `json:"id" validate:"omitempty,gt=0"`
}

// serializeUser never carries the password digest; models.User hides it from JSON.
func (h *Handlers) serializeUser(user models.User) models.User {
	user.Username = h.Sanitizer.Sanitize(user.Username)
	user.Email = h.Sanitizer.Sanitize(user.Email)
	user.Password = ""
	return user
}

func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserRepo.GetAll(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "User")
		return
	}

	response := make([]models.User, 0, len(users))
	for _, user := range users {
		response = append(response, h.serializeUser(user))
	}

	WriteJSON(w, response, http.StatusOK)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseID(r)
	if !ok {
		WriteError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	user, err := h.UserRepo.GetByID(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err, "User")
		return
	}

	WriteJSON(w, h.serializeUser(*user), http.StatusOK)
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	user, err := h.UserService.CreateUser(r.Context(), service.CreateUserInput{
		ID:       derefInt64(req.ID),
		Username: *req.Username,
		Email:    *req.Email,
		Password: *req.Password,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "User")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/users/%d", user.ID))
	WriteJSON(w, h.serializeUser(*user), http.StatusCreated)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseID(r)
	if !ok {
		WriteError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), userID); err != nil {
		h.writeServiceError(w, r, err, "User")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
