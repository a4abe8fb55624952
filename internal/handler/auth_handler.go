package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"socialfeed/internal/service"
)

// LoginRequest accepts the user name as either user_name or username.
type LoginRequest struct {
	UserName *string `json:"user_name"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type LoginResponse struct {
	AuthToken string `json:"authToken"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	username := req.UserName
	if username == nil {
		username = req.Username
	}

	if username == nil {
		WriteError(w, "Missing 'user_name' in request body", http.StatusBadRequest)
		return
	}
	if req.Password == nil {
		WriteError(w, "Missing 'password' in request body", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), *username, *req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, "Incorrect username or password", http.StatusBadRequest)
			return
		}
		h.writeServiceError(w, r, err, "User")
		return
	}

	WriteJSON(w, LoginResponse{AuthToken: token}, http.StatusOK)
}
