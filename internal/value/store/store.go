package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nestegg/internal/value"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateRecord checks the account and inserts inside one transaction, so the
// record can never outlive a concurrent account delete.
func (s *Store) CreateRecord(ctx context.Context, rec *value.Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx,
		`SELECT 1 FROM accounts WHERE id = ?`, rec.AccountID.String(),
	).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return value.ErrAccountNotFound
		}

		return fmt.Errorf("checking account: %w", err)
	}

	query := `
		INSERT INTO value_records (id, account_id, value, date, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if _, err := tx.ExecContext(ctx, query,
		rec.ID.String(),
		rec.AccountID.String(),
		rec.Value,
		rec.Date.Format(time.DateOnly),
		rec.CreatedAt.Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("creating value record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) ListRecords(ctx context.Context) ([]*value.Record, error) {
	// ISO dates stored as TEXT sort chronologically; rowid keeps ties in
	// insertion order.
	query := `
		SELECT id, account_id, value, date, created_at
		FROM value_records
		ORDER BY date ASC, rowid ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing value records: %w", err)
	}
	defer rows.Close()

	var recs []*value.Record

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning value record: %w", err)
		}

		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating value record rows: %w", err)
	}

	return recs, nil
}

func (s *Store) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM value_records WHERE id = ?`, id.String(),
	)
	if err != nil {
		return fmt.Errorf("deleting value record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting value record: %w", err)
	}

	if affected == 0 {
		return value.ErrNotFound
	}

	return nil
}

func scanRecord(rows *sql.Rows) (*value.Record, error) {
	var (
		rec       value.Record
		idStr     string
		acctStr   string
		dateStr   string
		createdAt string
	)

	if err := rows.Scan(&idStr, &acctStr, &rec.Value, &dateStr, &createdAt); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parsing record id: %w", err)
	}

	rec.ID = id

	acctID, err := uuid.Parse(acctStr)
	if err != nil {
		return nil, fmt.Errorf("parsing account id: %w", err)
	}

	rec.AccountID = acctID

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}

	rec.Date = date

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	rec.CreatedAt = ts

	return &rec, nil
}
