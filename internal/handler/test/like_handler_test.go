package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"socialfeed/internal/models"
	"socialfeed/internal/repository"
	"socialfeed/internal/service"
)

func TestGetLikes(t *testing.T) {
	h, m := createTestHandler()
	m.likeRepo.On("GetAll", mock.Anything).Return([]models.Like{
		{ID: 1, Likes: `<script>alert(1)</script>like`, UserID: 1, PostID: 2},
	}, nil)

	rr := httptest.NewRecorder()
	h.GetLikes(rr, httptest.NewRequest(http.MethodGet, "/likes", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var likes []models.Like
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &likes))
	require.Len(t, likes, 1)
	assert.Equal(t, "like", likes[0].Likes)
}

func TestGetLike(t *testing.T) {
	h, m := createTestHandler()
	m.likeRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Like{ID: 1, Likes: "like", UserID: 1, PostID: 2}, nil)
	m.likeRepo.On("GetByID", mock.Anything, int64(2)).Return(nil, repository.ErrNotFound)

	rr := httptest.NewRecorder()
	h.GetLike(rr, withID(httptest.NewRequest(http.MethodGet, "/likes/1", nil), "1"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"likes":"like","user_id":1,"post_id":2}`, rr.Body.String())

	rr = httptest.NewRecorder()
	h.GetLike(rr, withID(httptest.NewRequest(http.MethodGet, "/likes/2", nil), "2"))
	assertJSONError(t, rr, http.StatusNotFound, "Like doesn't exist")
}

func TestCreateLike(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, m := createTestHandler()
		m.likeService.On("CreateLike", mock.Anything, service.CreateLikeInput{Likes: "like", UserID: 3, PostID: 2}).
			Return(&models.Like{ID: 8, Likes: "like", UserID: 3, PostID: 2}, nil)

		rr := httptest.NewRecorder()
		h.CreateLike(rr, withCaller(newJSONRequest(t, http.MethodPost, "/likes", `{"likes": "like", "post_id": 2}`), 3))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "/likes/8", rr.Header().Get("Location"))
	})

	t.Run("numeric likes", func(t *testing.T) {
		h, m := createTestHandler()
		m.likeService.On("CreateLike", mock.Anything, service.CreateLikeInput{Likes: "1", UserID: 3, PostID: 2}).
			Return(&models.Like{ID: 9, Likes: "1", UserID: 3, PostID: 2}, nil)

		rr := httptest.NewRecorder()
		h.CreateLike(rr, withCaller(newJSONRequest(t, http.MethodPost, "/likes", `{"likes": 1, "post_id": 2}`), 3))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"id":9,"likes":"1","user_id":3,"post_id":2}`, rr.Body.String())
		m.likeService.AssertExpectations(t)
	})

	t.Run("boolean likes", func(t *testing.T) {
		h, m := createTestHandler()

		rr := httptest.NewRecorder()
		h.CreateLike(rr, withCaller(newJSONRequest(t, http.MethodPost, "/likes", `{"likes": true, "post_id": 2}`), 3))

		assertJSONError(t, rr, http.StatusBadRequest, "Invalid request body")
		m.likeService.AssertNotCalled(t, "CreateLike", mock.Anything, mock.Anything)
	})

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing likes", `{"post_id": 2}`, "Missing 'likes' in request body"},
		{"missing post_id", `{"likes": "like"}`, "Missing 'post_id' in request body"},
		{"first missing wins", `{}`, "Missing 'likes' in request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestHandler()

			rr := httptest.NewRecorder()
			h.CreateLike(rr, withCaller(newJSONRequest(t, http.MethodPost, "/likes", tt.body), 3))

			assertJSONError(t, rr, http.StatusBadRequest, tt.message)
		})
	}

	t.Run("already liked", func(t *testing.T) {
		h, m := createTestHandler()
		m.likeService.On("CreateLike", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("create like: %w", repository.ErrConflict))

		rr := httptest.NewRecorder()
		h.CreateLike(rr, withCaller(newJSONRequest(t, http.MethodPost, "/likes", `{"likes": "like", "post_id": 2}`), 3))

		assertJSONError(t, rr, http.StatusConflict, "Like already exists")
	})

	t.Run("unknown post", func(t *testing.T) {
		h, m := createTestHandler()
		fkErr := fmt.Errorf("create like: %w: %w", repository.ErrInvalidReference,
			&pgconn.PgError{Code: "23503", ConstraintName: "likes_post_id_fkey"})
		m.likeService.On("CreateLike", mock.Anything, mock.Anything).Return(nil, fkErr)

		rr := httptest.NewRecorder()
		h.CreateLike(rr, withCaller(newJSONRequest(t, http.MethodPost, "/likes", `{"likes": "like", "post_id": 99}`), 3))

		assertJSONError(t, rr, http.StatusBadRequest, "Referenced post doesn't exist")
	})
}

func TestDeleteLike(t *testing.T) {
	h, m := createTestHandler()
	m.likeService.On("DeleteLike", mock.Anything, int64(8)).Return(nil)

	rr := httptest.NewRecorder()
	h.DeleteLike(rr, withID(httptest.NewRequest(http.MethodDelete, "/likes/8", nil), "8"))

	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	h.DeleteLike(rr, withID(httptest.NewRequest(http.MethodDelete, "/likes/x", nil), "x"))

	assertJSONError(t, rr, http.StatusBadRequest, "Invalid id")
}
