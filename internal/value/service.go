package value

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=value
type Repository interface {
	// CreateRecord inserts the record, failing with ErrAccountNotFound when
	// the referenced account does not exist.
	CreateRecord(ctx context.Context, rec *Record) error
	ListRecords(ctx context.Context) ([]*Record, error)
	DeleteRecord(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	AccountID uuid.UUID
	Value     float64
	Date      time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Record, error) {
	rec := &Record{
		AccountID: params.AccountID,
		Value:     params.Value,
		Date:      params.Date,
	}
	if err := s.repo.CreateRecord(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// List returns every record across all accounts, oldest date first.
func (s *Service) List(ctx context.Context) ([]*Record, error) {
	return s.repo.ListRecords(ctx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRecord(ctx, id)
}
