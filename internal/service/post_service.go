package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gabriel-vasile/mimetype"

	"socialfeed/internal/models"
	"socialfeed/internal/repository"
	"socialfeed/internal/storage"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

type CreatePostInput struct {
	ID      int64
	Content string
	UserID  int64
}

type AddImageInput struct {
	PostID   int64
	CallerID int64
	File     io.ReadSeeker
	Size     int64
}

type PostService interface {
	CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	AddImage(ctx context.Context, input AddImageInput) (*models.Image, error)
	ListImages(ctx context.Context, postID int64) ([]models.Image, error)
}

type postService struct {
	postRepo  repository.PostRepository
	imageRepo repository.ImageRepository
	storage   storage.Storage
	logger    *slog.Logger
}

// NewPostService builds the post service. store may be nil when object storage
// is disabled; image operations then fail with ErrStorageDisabled.
func NewPostService(postRepo repository.PostRepository, imageRepo repository.ImageRepository, store storage.Storage, logger *slog.Logger) PostService {
	return &postService{
		postRepo:  postRepo,
		imageRepo: imageRepo,
		storage:   store,
		logger:    logger,
	}
}

func (p *postService) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	return p.postRepo.Create(ctx, &models.Post{
		ID:      input.ID,
		Content: input.Content,
		UserID:  input.UserID,
	})
}

func (p *postService) DeletePost(ctx context.Context, postID int64) error {
	return p.postRepo.Delete(ctx, postID)
}

func (p *postService) AddImage(ctx context.Context, input AddImageInput) (*models.Image, error) {
	if p.storage == nil {
		return nil, ErrStorageDisabled
	}

	post, err := p.postRepo.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	if post.UserID != input.CallerID {
		return nil, ErrForbidden
	}

	mtype, err := mimetype.DetectReader(input.File)
	if err != nil {
		return nil, fmt.Errorf("detect image type: %w", err)
	}

	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		return nil, &ValidationError{
			Field:   "image",
			Message: fmt.Sprintf("Unsupported image type %s", mtype.String()),
		}
	}

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}

	objectName, imageURL, err := p.storage.UploadImage(ctx, input.PostID, mtype.Extension(), mtype.String(), input.File, input.Size)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	image, err := p.imageRepo.Create(ctx, &models.Image{
		PostID:      input.PostID,
		ObjectName:  objectName,
		URL:         imageURL,
		ContentType: mtype.String(),
		Size:        input.Size,
	})
	if err != nil {
		if delErr := p.storage.DeleteImage(ctx, objectName); delErr != nil {
			p.logger.Warn("orphaned image object", "object", objectName, "error", delErr.Error())
		}
		return nil, err
	}

	return image, nil
}

func (p *postService) ListImages(ctx context.Context, postID int64) ([]models.Image, error) {
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	return p.imageRepo.GetByPostID(ctx, postID)
}
