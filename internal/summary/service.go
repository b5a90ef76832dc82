package summary

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=summary
type Repository interface {
	AccountTotals(ctx context.Context) ([]AccountTotal, error)

	// Target returns the configured savings target, or nil when no settings
	// row exists. It never creates the row.
	Target(ctx context.Context) (*float64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	totals, err := s.repo.AccountTotals(ctx)
	if err != nil {
		return nil, err
	}

	target, err := s.repo.Target(ctx)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		Target:   target,
		Accounts: totals,
	}

	for _, t := range totals {
		overview.Total += t.Total
	}

	return overview, nil
}
