package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"socialfeed/internal/authctx"
	"socialfeed/internal/models"
	"socialfeed/internal/service"
)

// LikeValue is the like label. Clients send it as a string or as a bare number.
type LikeValue string

func (v *LikeValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = LikeValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("likes must be a string or a number: %w", err)
	}
	*v = LikeValue(n.String())
	return nil
}

type CreateLikeRequest struct {
	Likes  *LikeValue `json:"likes" validate:"required"`
	UserID *int64  `json:"user_id" validate:"required"`
	PostID *int64  `json:"post_id" validate:"required,gt=0"`
	ID     *int64  `json:"id" validate:"omitempty,gt=0"`
}

func (h *Handlers) serializeLike(like models.Like) models.Like {
	like.Likes = h.Sanitizer.Sanitize(like.Likes)
	return like
}

func (h *Handlers) GetLikes(w http.ResponseWriter, r *http.Request) {
	likes, err := h.LikeRepo.GetAll(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "Like")
		return
	}

	response := make([]models.Like, 0, len(likes))
	for _, like := range likes {
		response = append(response, h.serializeLike(like))
	}

	WriteJSON(w, response, http.StatusOK)
}

func (h *Handlers) GetLike(w http.ResponseWriter, r *http.Request) {
	likeID, ok := parseID(r)
	if !ok {
		WriteError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	like, err := h.LikeRepo.GetByID(r.Context(), likeID)
	if err != nil {
		h.writeServiceError(w, r, err, "Like")
		return
	}

	WriteJSON(w, h.serializeLike(*like), http.StatusOK)
}

func (h *Handlers) CreateLike(w http.ResponseWriter, r *http.Request) {
	callerID, ok := authctx.UserIDFrom(r.Context())
	if !ok {
		WriteError(w, "Unauthorized request", http.StatusUnauthorized)
		return
	}

	var req CreateLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.UserID = &callerID

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	like, err := h.LikeService.CreateLike(r.Context(), service.CreateLikeInput{
		ID:     derefInt64(req.ID),
		Likes:  string(*req.Likes),
		UserID: *req.UserID,
		PostID: *req.PostID,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "Like")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/likes/%d", like.ID))
	WriteJSON(w, h.serializeLike(*like), http.StatusCreated)
}

func (h *Handlers) DeleteLike(w http.ResponseWriter, r *http.Request) {
	likeID, ok := parseID(r)
	if !ok {
		WriteError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	if err := h.LikeService.DeleteLike(r.Context(), likeID); err != nil {
		h.writeServiceError(w, r, err, "Like")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
