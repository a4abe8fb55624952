package service

import (
	"context"

	"socialfeed/internal/models"
	"socialfeed/internal/repository"
)

type CreateLikeInput struct {
	ID     int64
	Likes  string
	UserID int64
	PostID int64
}

type LikeService interface {
	CreateLike(ctx context.Context, input CreateLikeInput) (*models.Like, error)
	DeleteLike(ctx context.Context, likeID int64) error
}

type likeService struct {
	likeRepo repository.LikeRepository
}

func NewLikeService(likeRepo repository.LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

// CreateLike stores one reaction. A repeated like from the same user on the
// same post surfaces as repository.ErrConflict.
func (s *likeService) CreateLike(ctx context.Context, input CreateLikeInput) (*models.Like, error) {
	return s.likeRepo.Create(ctx, &models.Like{
		ID:     input.ID,
		Likes:  input.Likes,
		UserID: input.UserID,
		PostID: input.PostID,
	})
}

func (s *likeService) DeleteLike(ctx context.Context, likeID int64) error {
	return s.likeRepo.Delete(ctx, likeID)
}
