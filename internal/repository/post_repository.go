package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"socialfeed/internal/models"
)

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

const selectPosts = `
	SELECT p.id, p.content, p.date_created, p.user_id, COUNT(l.id) AS like_count
	FROM posts p
	LEFT JOIN likes l ON l.post_id = p.id
`

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	var created models.Post

	if post.ID > 0 {
		query := `
			INSERT INTO posts (id, content, user_id)
			VALUES ($1, $2, $3)
			RETURNING id, content, date_created, user_id
		`
		err := createWithID(ctx, r.DB, "posts", &created, query, post.ID, post.Content, post.UserID)
		if err != nil {
			return nil, classify("create post", err)
		}
		return &created, nil
	}

	query := `
		INSERT INTO posts (content, user_id)
		VALUES ($1, $2)
		RETURNING id, content, date_created, user_id
	`
	if err := r.DB.GetContext(ctx, &created, query, post.Content, post.UserID); err != nil {
		return nil, classify("create post", err)
	}

	return &created, nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]models.Post, error) {
	query := selectPosts + `
	GROUP BY p.id
	ORDER BY p.id
	`

	var posts []models.Post
	if err := r.DB.SelectContext(ctx, &posts, query); err != nil {
		return nil, classify("list posts", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := selectPosts + `
	WHERE p.id = $1
	GROUP BY p.id
	`

	var post models.Post
	if err := r.DB.GetContext(ctx, &post, query, id); err != nil {
		return nil, classify("get post", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.DB, "posts", id)
}
