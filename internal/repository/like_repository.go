package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"socialfeed/internal/models"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts a like row. A second like by the same user on the same post
// violates likes_user_post_unique and comes back as ErrConflict.
func (r *likeRepository) Create(ctx context.Context, like *models.Like) (*models.Like, error) {
	var created models.Like

	if like.ID > 0 {
		query := `
			INSERT INTO likes (id, likes, user_id, post_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id, likes, user_id, post_id
		`
		err := createWithID(ctx, r.db, "likes", &created, query, like.ID, like.Likes, like.UserID, like.PostID)
		if err != nil {
			return nil, classify("create like", err)
		}
		return &created, nil
	}

	query := `
		INSERT INTO likes (likes, user_id, post_id)
		VALUES ($1, $2, $3)
		RETURNING id, likes, user_id, post_id
	`
	if err := r.db.GetContext(ctx, &created, query, like.Likes, like.UserID, like.PostID); err != nil {
		return nil, classify("create like", err)
	}

	return &created, nil
}

func (r *likeRepository) GetAll(ctx context.Context) ([]models.Like, error) {
	query := `SELECT id, likes, user_id, post_id FROM likes ORDER BY id`

	var likes []models.Like
	if err := r.db.SelectContext(ctx, &likes, query); err != nil {
		return nil, classify("list likes", err)
	}

	return likes, nil
}

func (r *likeRepository) GetByID(ctx context.Context, id int64) (*models.Like, error) {
	query := `SELECT id, likes, user_id, post_id FROM likes WHERE id = $1`

	var like models.Like
	if err := r.db.GetContext(ctx, &like, query, id); err != nil {
		return nil, classify("get like", err)
	}

	return &like, nil
}

func (r *likeRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "likes", id)
}
