package contribution

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=contribution
type Repository interface {
	// CreateContribution inserts the contribution. For a recurring entry
	// tied to an account it first removes that account's existing recurring
	// entries, all inside one transaction, so at most one recurring
	// contribution per account is ever visible.
	CreateContribution(ctx context.Context, c *Contribution) error
	ListContributions(ctx context.Context) ([]*Contribution, error)
	DeleteContribution(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	AccountID *uuid.UUID
	Amount    float64
	Date      *string
	Recurring bool
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Contribution, error) {
	c := &Contribution{
		AccountID: params.AccountID,
		Amount:    params.Amount,
		Date:      params.Date,
		Recurring: params.Recurring,
	}
	if err := s.repo.CreateContribution(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// List returns every contribution ordered by date ascending, entries without
// a date first.
func (s *Service) List(ctx context.Context) ([]*Contribution, error) {
	return s.repo.ListContributions(ctx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteContribution(ctx, id)
}
