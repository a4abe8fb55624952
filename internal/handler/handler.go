package handlers

import (
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"socialfeed/internal/config"
	"socialfeed/internal/repository"
	"socialfeed/internal/sanitize"
	"socialfeed/internal/service"
)

type Handlers struct {
	UserService   service.UserService
	UserRepo      repository.UserRepository
	AuthService   service.AuthService
	PostService   service.PostService
	PostRepo      repository.PostRepository
	LikeService   service.LikeService
	LikeRepo      repository.LikeRepository
	HealthService service.HealthService
	Sanitizer     sanitize.Sanitizer
	Cfg           *config.Config
	Validate      *validator.Validate
	Logger        *slog.Logger
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		UserService:   service.User,
		UserRepo:      repo.User,
		AuthService:   service.Auth,
		PostService:   service.Post,
		PostRepo:      repo.Post,
		LikeService:   service.Like,
		LikeRepo:      repo.Like,
		HealthService: service.Health,
		Sanitizer:     sanitize.New(),
		Cfg:           config,
		Validate:      NewValidator(),
		Logger:        logger,
	}
}

// NewValidator reports fields by their JSON names.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}
