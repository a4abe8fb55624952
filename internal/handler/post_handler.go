package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"

	"socialfeed/internal/authctx"
	"socialfeed/internal/models"
	"socialfeed/internal/service"
)

type CreatePostRequest struct {
	Content *string `json:"content" validate:"required,min=1"`
	UserID  *int64  `json:"user_id" validate:"required"`
	ID      *int64  `json:"id" validate:"omitempty,gt=0"`
}

type ImageUploadResponse struct {
	Image models.Image `json:"image"`
	Size  string       `json:"size"`
}

func (h *Handlers) serializePost(post models.Post) models.Post {
	post.Content = h.Sanitizer.Sanitize(post.Content)
	return post
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostRepo.GetAll(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "Post")
		return
	}

	response := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		response = append(response, h.serializePost(post))
	}

	WriteJSON(w, response, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := parseID(r)
	if !ok {
		WriteError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		h.writeServiceError(w, r, err, "Post")
		return
	}

	WriteJSON(w, h.serializePost(*post), http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	callerID, ok := authctx.UserIDFrom(r.Context())
	if !ok {
		WriteError(w, "Unauthorized request", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// the author is always the caller
	req.UserID = &callerID

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), service.CreatePostInput{
		ID:      derefInt64(req.ID),
		Content: *req.Content,
		UserID:  *req.UserID,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "Post")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/posts/%d", post.ID))
	WriteJSON(w, h.serializePost(*post), http.StatusCreated)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := parseID(r)
	if !ok {
		WriteError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), postID); err != nil {
		h.writeServiceError(w, r, err, "Post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AddImage(w http.ResponseWriter, r *http.Request) {
	postID, ok := parseID(r)
	if !ok {
		WriteError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	callerID, ok := authctx.UserIDFrom(r.Context())
	if !ok {
		WriteError(w, "Unauthorized request", http.StatusUnauthorized)
		return
	}

	maxSize := h.Cfg.MaxUploadSize
	tooLarge := fmt.Sprintf("Image must not exceed %s", humanize.Bytes(uint64(maxSize)))

	// leave room for the multipart envelope around the file
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+1<<20)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WriteError(w, tooLarge, http.StatusBadRequest)
			return
		}
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Missing 'image' in request body", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxSize {
		WriteError(w, tooLarge, http.StatusBadRequest)
		return
	}

	image, err := h.PostService.AddImage(r.Context(), service.AddImageInput{
		PostID:   postID,
		CallerID: callerID,
		File:     file,
		Size:     header.Size,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "Post")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/posts/%d/images", postID))
	WriteJSON(w, ImageUploadResponse{
		Image: *image,
		Size:  humanize.Bytes(uint64(image.Size)),
	}, http.StatusCreated)
}

func (h *Handlers) GetImages(w http.ResponseWriter, r *http.Request) {
	postID, ok := parseID(r)
	if !ok {
		WriteError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	images, err := h.PostService.ListImages(r.Context(), postID)
	if err != nil {
		h.writeServiceError(w, r, err, "Post")
		return
	}

	if images == nil {
		images = []models.Image{}
	}

	WriteJSON(w, images, http.StatusOK)
}
