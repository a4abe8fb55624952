package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"socialfeed/internal/config"
	"socialfeed/internal/models"
	"socialfeed/internal/repository"
)

type CreateUserInput struct {
	ID       int64
	Username string
	Email    string
	Password string
}

type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type userService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

var (
	errUsernameTaken = &ConflictError{Field: "username", Message: "Username already taken"}
	errEmailTaken    = &ConflictError{Field: "email", Message: "Email already taken"}
)

func (s *userService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if err := ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	taken, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, errUsernameTaken
	}

	taken, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, errEmailTaken
	}

	digest, err := HashPassword(input.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &models.User{
		ID:       input.ID,
		Username: input.Username,
		Email:    input.Email,
		Password: digest,
	})
	if err != nil {
		// a concurrent registration can still win the race to the unique index
		if errors.Is(err, repository.ErrConflict) {
			switch constraint := repository.Constraint(err); {
			case strings.Contains(constraint, "email"):
				return nil, errEmailTaken
			case strings.Contains(constraint, "username"):
				return nil, errUsernameTaken
			}
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	return s.userRepo.Delete(ctx, userID)
}
