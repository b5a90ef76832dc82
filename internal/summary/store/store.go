package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nestegg/internal/summary"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// AccountTotals resolves every account's latest snapshot in one query. Ties
// on the max date go to the most recently inserted row.
func (s *Store) AccountTotals(ctx context.Context) ([]summary.AccountTotal, error) {
	query := `
		SELECT a.id, a.name, COALESCE((
			SELECT v.value
			FROM value_records v
			WHERE v.account_id = a.id
			ORDER BY v.date DESC, v.rowid DESC
			LIMIT 1
		), 0) AS total
		FROM accounts a
		ORDER BY a.rowid ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying account totals: %w", err)
	}
	defer rows.Close()

	var totals []summary.AccountTotal

	for rows.Next() {
		var (
			t     summary.AccountTotal
			idStr string
		)

		if err := rows.Scan(&idStr, &t.Name, &t.Total); err != nil {
			return nil, fmt.Errorf("scanning account total: %w", err)
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("parsing account id: %w", err)
		}

		t.ID = id

		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account total rows: %w", err)
	}

	return totals, nil
}

func (s *Store) Target(ctx context.Context) (*float64, error) {
	var target sql.NullFloat64

	err := s.db.QueryRowContext(ctx,
		`SELECT total_target FROM app_settings LIMIT 1`,
	).Scan(&target)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("querying target: %w", err)
	}

	if !target.Valid {
		return nil, nil
	}

	return &target.Float64, nil
}
