package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nestegg/internal/account"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateAccount(ctx context.Context, acct *account.Account) error {
	if acct.ID == uuid.Nil {
		acct.ID = uuid.New()
	}

	if acct.CreatedAt.IsZero() {
		acct.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO accounts (id, name, created_at) VALUES (?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		acct.ID.String(), acct.Name, acct.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]*account.Account, error) {
	query := `SELECT id, name, created_at FROM accounts ORDER BY rowid ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accts []*account.Account

	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accts = append(accts, acct)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accts, nil
}

func (s *Store) RenameAccount(ctx context.Context, id uuid.UUID, name string) (*account.Account, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET name = ? WHERE id = ?`, name, id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("renaming account: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("renaming account: %w", err)
	}

	if affected == 0 {
		return nil, account.ErrNotFound
	}

	acct, err := scanAccount(s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM accounts WHERE id = ?`, id.String(),
	))
	if err != nil {
		return nil, fmt.Errorf("reloading account: %w", err)
	}

	return acct, nil
}

// DeleteAccount removes the account and every dependent row in a single
// transaction, so readers never see a dangling value record or contribution.
func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx,
		`SELECT 1 FROM accounts WHERE id = ?`, id.String(),
	).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return account.ErrNotFound
		}

		return fmt.Errorf("checking account: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM value_records WHERE account_id = ?`, id.String(),
	); err != nil {
		return fmt.Errorf("deleting value records: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM future_contributions WHERE account_id = ?`, id.String(),
	); err != nil {
		return fmt.Errorf("deleting future contributions: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM accounts WHERE id = ?`, id.String(),
	); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*account.Account, error) {
	var (
		acct      account.Account
		idStr     string
		createdAt string
	)

	if err := s.Scan(&idStr, &acct.Name, &createdAt); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parsing account id: %w", err)
	}

	acct.ID = id

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	acct.CreatedAt = ts

	return &acct, nil
}
