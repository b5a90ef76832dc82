package account

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, acct *Account) error
	ListAccounts(ctx context.Context) ([]*Account, error)
	RenameAccount(ctx context.Context, id uuid.UUID, name string) (*Account, error)

	// DeleteAccount removes the account together with all of its value
	// records and future contributions, atomically.
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, name string) (*Account, error) {
	acct := &Account{Name: name}
	if err := s.repo.CreateAccount(ctx, acct); err != nil {
		return nil, err
	}

	return acct, nil
}

func (s *Service) List(ctx context.Context) ([]*Account, error) {
	return s.repo.ListAccounts(ctx)
}

func (s *Service) Rename(ctx context.Context, id uuid.UUID, name string) (*Account, error) {
	return s.repo.RenameAccount(ctx, id, name)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAccount(ctx, id)
}
