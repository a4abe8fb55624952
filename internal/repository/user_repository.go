package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"socialfeed/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Create stores the user as given; user.Password must already be a digest.
func (r *userRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	var created models.User

	if user.ID > 0 {
		query := `
			INSERT INTO users (id, username, email, password)
			VALUES ($1, $2, $3, $4)
			RETURNING id, username, email, password, date_created
		`
		err := createWithID(ctx, r.db, "users", &created, query, user.ID, user.Username, user.Email, user.Password)
		if err != nil {
			return nil, classify("create user", err)
		}
		return &created, nil
	}

	query := `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password, date_created
	`
	if err := r.db.GetContext(ctx, &created, query, user.Username, user.Email, user.Password); err != nil {
		return nil, classify("create user", err)
	}

	return &created, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, username, email, password, date_created FROM users ORDER BY id`

	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, classify("list users", err)
	}

	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, username, email, password, date_created FROM users WHERE id = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, classify("get user", err)
	}

	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, email, password, date_created FROM users WHERE username = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, classify("get user by username", err)
	}

	return &user, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	if err := r.db.GetContext(ctx, &exists, query, username); err != nil {
		return false, classify("check username", err)
	}

	return exists, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, classify("check email", err)
	}

	return exists, nil
}

// Delete removes a user. Users that still own posts or likes are reported as ErrInUse.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "users", id)
}
