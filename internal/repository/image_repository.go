package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"socialfeed/internal/models"
)

type ImageRepositoryImpl struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) *ImageRepositoryImpl {
	return &ImageRepositoryImpl{db: db}
}

func (r *ImageRepositoryImpl) Create(ctx context.Context, image *models.Image) (*models.Image, error) {
	query := `
		INSERT INTO post_images (post_id, object_name, url, content_type, size)
		VALUES (:post_id, :object_name, :url, :content_type, :size)
		RETURNING id, post_id, object_name, url, content_type, size, date_created
	`

	rows, err := r.db.NamedQueryContext(ctx, query, image)
	if err != nil {
		return nil, classify("create image", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, classify("create image", err)
		}
		return nil, &StorageError{Op: "create image", Err: errNoRowReturned}
	}

	var created models.Image
	if err := rows.StructScan(&created); err != nil {
		return nil, classify("create image", err)
	}

	return &created, nil
}

func (r *ImageRepositoryImpl) GetByPostID(ctx context.Context, postID int64) ([]models.Image, error) {
	query := `
		SELECT id, post_id, object_name, url, content_type, size, date_created
		FROM post_images
		WHERE post_id = $1
		ORDER BY id
	`

	var images []models.Image
	if err := r.db.SelectContext(ctx, &images, query, postID); err != nil {
		return nil, classify("list images", err)
	}

	return images, nil
}
