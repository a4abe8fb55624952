package service

import (
	"log/slog"

	"socialfeed/internal/config"
	"socialfeed/internal/repository"
	"socialfeed/internal/storage"
)

type Service struct {
	User   UserService
	Post   PostService
	Like   LikeService
	Auth   AuthService
	Health HealthService
}

func NewService(rep *repository.Repository, cfg *config.Config, store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		User:   NewUserService(rep.User, cfg),
		Post:   NewPostService(rep.Post, rep.Image, store, logger),
		Like:   NewLikeService(rep.Like),
		Auth:   NewAuthService(rep.User, cfg),
		Health: NewHealthService(rep.Health),
	}
}
