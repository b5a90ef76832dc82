package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nestegg/internal/settings"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetOrCreate runs check-then-insert inside one transaction. The schema's
// unique singleton column backstops it: two racing creators cannot both
// commit a row.
func (s *Store) GetOrCreate(ctx context.Context) (*settings.Settings, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := scanSettings(tx.QueryRowContext(ctx,
		`SELECT id, total_target FROM app_settings LIMIT 1`,
	))
	if err == nil {
		return row, tx.Commit()
	}

	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	row = &settings.Settings{ID: uuid.New()}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO app_settings (id, total_target) VALUES (?, NULL)`,
		row.ID.String(),
	); err != nil {
		return nil, fmt.Errorf("creating settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return row, nil
}

func (s *Store) Upsert(ctx context.Context, totalTarget float64) (*settings.Settings, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := scanSettings(tx.QueryRowContext(ctx,
		`SELECT id, total_target FROM app_settings LIMIT 1`,
	))

	switch {
	case err == sql.ErrNoRows:
		row = &settings.Settings{ID: uuid.New()}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO app_settings (id, total_target) VALUES (?, ?)`,
			row.ID.String(), totalTarget,
		); err != nil {
			return nil, fmt.Errorf("creating settings: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("getting settings: %w", err)
	default:
		if _, err := tx.ExecContext(ctx,
			`UPDATE app_settings SET total_target = ? WHERE id = ?`,
			totalTarget, row.ID.String(),
		); err != nil {
			return nil, fmt.Errorf("updating settings: %w", err)
		}
	}

	row.TotalTarget = &totalTarget

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return row, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSettings(s scanner) (*settings.Settings, error) {
	var (
		idStr  string
		target sql.NullFloat64
	)

	if err := s.Scan(&idStr, &target); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parsing settings id: %w", err)
	}

	row := &settings.Settings{ID: id}
	if target.Valid {
		row.TotalTarget = &target.Float64
	}

	return row, nil
}
