package service

import (
	"context"
	"fmt"

	"socialfeed/internal/repository"
)

type HealthService interface {
	Check(ctx context.Context) (int, error)
}

type healthService struct {
	healthRepo repository.HealthRepository
}

func NewHealthService(healthRepo repository.HealthRepository) HealthService {
	return &healthService{healthRepo: healthRepo}
}

// Check pings the database and returns the number of tables in the public schema.
func (s *healthService) Check(ctx context.Context) (int, error) {
	if err := s.healthRepo.Ping(ctx); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	count, err := s.healthRepo.CountTables(ctx)
	if err != nil {
		return 0, err
	}

	return count, nil
}
