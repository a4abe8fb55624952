package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"socialfeed/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
}

type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) (*models.Like, error)
	GetAll(ctx context.Context) ([]models.Like, error)
	GetByID(ctx context.Context, id int64) (*models.Like, error)
	Delete(ctx context.Context, id int64) error
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) (*models.Image, error)
	GetByPostID(ctx context.Context, postID int64) ([]models.Image, error)
}

type HealthRepository interface {
	Ping(ctx context.Context) error
	CountTables(ctx context.Context) (int, error)
}

// Repository groups the gateways that share one database handle.
type Repository struct {
	User   UserRepository
	Post   PostRepository
	Like   LikeRepository
	Image  ImageRepository
	Health HealthRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:   NewUserRepository(db),
		Post:   NewPostRepository(db),
		Like:   NewLikeRepository(db),
		Image:  NewImageRepository(db),
		Health: NewHealthRepository(db),
	}
}

const syncSequenceQuery = `SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT MAX(id) FROM %[1]s))`

// createWithID inserts a row whose id was chosen by the caller and moves the
// table's id sequence past it, so later generated ids do not collide.
func createWithID(ctx context.Context, db *sqlx.DB, table string, dest interface{}, query string, args ...interface{}) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.GetContext(ctx, dest, query, args...); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(syncSequenceQuery, table)); err != nil {
		return err
	}

	return tx.Commit()
}

// deleteByID runs DELETE ... WHERE id = $1 and reports ErrNotFound when nothing
// matched. Rows still referenced by a non cascading foreign key yield ErrInUse.
func deleteByID(ctx context.Context, db *sqlx.DB, table string, id int64) error {
	op := "delete from " + table

	result, err := db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		if sqlState(err) == sqlStateForeignKeyViolation {
			return fmt.Errorf("%s: id %d: %w: %w", op, id, ErrInUse, err)
		}
		return classify(op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return classify(op, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s: id %d: %w", op, id, ErrNotFound)
	}

	return nil
}
