package settings

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settings
type Repository interface {
	// GetOrCreate returns the singleton row, inserting one with a nil
	// target when none exists yet. Repeated calls return the same row.
	GetOrCreate(ctx context.Context) (*Settings, error)

	// Upsert sets the target on the singleton row, creating it if needed.
	Upsert(ctx context.Context, totalTarget float64) (*Settings, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.GetOrCreate(ctx)
}

func (s *Service) Update(ctx context.Context, totalTarget float64) (*Settings, error) {
	return s.repo.Upsert(ctx, totalTarget)
}
