package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nestegg/internal/contribution"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateContribution(ctx context.Context, c *contribution.Contribution) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var acctID *string

	if c.AccountID != nil {
		id := c.AccountID.String()
		acctID = &id

		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM accounts WHERE id = ?`, id,
		).Scan(&exists); err != nil {
			if err == sql.ErrNoRows {
				return contribution.ErrAccountNotFound
			}

			return fmt.Errorf("checking account: %w", err)
		}
	}

	// Replace rule: a new recurring entry for an account supersedes the old
	// one. Matches only (account_id, recurring) — one-off entries for the
	// account and other accounts' recurring entries stay. Unallocated
	// recurring entries are never deduplicated.
	if c.Recurring && acctID != nil {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM future_contributions WHERE account_id = ? AND recurring = 1`,
			*acctID,
		); err != nil {
			return fmt.Errorf("replacing recurring contribution: %w", err)
		}
	}

	query := `
		INSERT INTO future_contributions (id, account_id, amount, date, recurring, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if _, err := tx.ExecContext(ctx, query,
		c.ID.String(), acctID, c.Amount, c.Date, c.Recurring,
		time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("creating contribution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) ListContributions(ctx context.Context) ([]*contribution.Contribution, error) {
	// Dateless entries sort first, explicitly rather than by engine default.
	query := `
		SELECT id, account_id, amount, date, recurring
		FROM future_contributions
		ORDER BY date IS NULL DESC, date ASC, rowid ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing contributions: %w", err)
	}
	defer rows.Close()

	var cs []*contribution.Contribution

	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contribution: %w", err)
		}

		cs = append(cs, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contribution rows: %w", err)
	}

	return cs, nil
}

func (s *Store) DeleteContribution(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM future_contributions WHERE id = ?`, id.String(),
	)
	if err != nil {
		return fmt.Errorf("deleting contribution: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting contribution: %w", err)
	}

	if affected == 0 {
		return contribution.ErrNotFound
	}

	return nil
}

func scanContribution(rows *sql.Rows) (*contribution.Contribution, error) {
	var (
		c       contribution.Contribution
		idStr   string
		acctStr sql.NullString
		date    sql.NullString
	)

	if err := rows.Scan(&idStr, &acctStr, &c.Amount, &date, &c.Recurring); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parsing contribution id: %w", err)
	}

	c.ID = id

	if acctStr.Valid {
		acctID, err := uuid.Parse(acctStr.String)
		if err != nil {
			return nil, fmt.Errorf("parsing account id: %w", err)
		}

		c.AccountID = &acctID
	}

	if date.Valid {
		c.Date = &date.String
	}

	return &c, nil
}
